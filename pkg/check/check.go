package check

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Panic panics if the provided error is not nil.
func Panic(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func check(
	condition bool, msgAndArgs []interface{}, internalFormat string, internalArgs ...interface{},
) error {
	if condition {
		return nil
	}
	internal := fmt.Sprintf(internalFormat, internalArgs...)
	if message := messageFromMsgAndArgs(true, msgAndArgs...); message != "" {
		return errors.New(message + ": " + internal)
	}
	return errors.New(internal)
}

// True checks whether the condition is true. This method returns an error with the provided
// message if the check fails.
func True(condition bool, msgAndArgs ...interface{}) error {
	return check(condition, msgAndArgs, "expected true, got false")
}

// TrueSilent checks whether the condition is true. Unlike True, the returned error contains only
// the provided message.
func TrueSilent(condition bool, msgAndArgs ...interface{}) error {
	if condition {
		return nil
	}
	return errors.New(messageFromMsgAndArgs(true, msgAndArgs...))
}

// False checks whether the condition is false. This method returns an error with the provided
// message if the check fails.
func False(condition bool, msgAndArgs ...interface{}) error {
	return check(!condition, msgAndArgs, "expected false, got true")
}

// Equal checks whether the two values are equal (via reflect.DeepEqual). This method returns an
// error with the provided message if the check fails.
func Equal(actual, expected interface{}, msgAndArgs ...interface{}) error {
	return check(reflect.DeepEqual(actual, expected), msgAndArgs,
		"%s does not equal %s", format(actual), format(expected))
}

// NotEmpty checks whether the provided string is non-empty. This method returns an error with the
// provided message if the check fails.
func NotEmpty(actual string, msgAndArgs ...interface{}) error {
	return check(len(actual) > 0, msgAndArgs, "%s must be non-empty", format(actual))
}

// In checks whether the actual value is contained in the expected list of strings. This method
// returns an error with the provided message if the check fails.
func In(actual string, expected []string, msgAndArgs ...interface{}) error {
	for _, value := range expected {
		if actual == value {
			return nil
		}
	}
	return check(false, msgAndArgs, "%s not in %v", format(actual), expected)
}
