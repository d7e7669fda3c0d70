package check

import "reflect"

func toFloat(val interface{}) (float64, bool) {
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func compare(actual, expected interface{}) (int, bool) {
	a, ok := toFloat(actual)
	if !ok {
		return 0, false
	}
	e, ok := toFloat(expected)
	if !ok {
		return 0, false
	}
	switch {
	case a < e:
		return -1, true
	case a > e:
		return 1, true
	default:
		return 0, true
	}
}

// GreaterThan checks whether the first argument is greater than the second. Both arguments must
// have the same numeric underlying type. This method returns an error with the provided message
// if the check fails.
func GreaterThan(actual, expected interface{}, msgAndArgs ...interface{}) error {
	cmp, ok := compare(actual, expected)
	if !ok {
		return check(false, msgAndArgs, "%s and %s are not comparable", format(actual),
			format(expected))
	}
	return check(cmp > 0, msgAndArgs, "%s is not greater than %s", format(actual), format(expected))
}

// GreaterThanOrEqualTo checks whether the first argument is greater than or equal to the second.
// Both arguments must have the same numeric underlying type. This method returns an error with
// the provided message if the check fails.
func GreaterThanOrEqualTo(actual, expected interface{}, msgAndArgs ...interface{}) error {
	cmp, ok := compare(actual, expected)
	if !ok {
		return check(false, msgAndArgs, "%s and %s are not comparable", format(actual),
			format(expected))
	}
	return check(cmp >= 0, msgAndArgs,
		"%s is not greater than or equal to %s", format(actual), format(expected))
}

// LessThanOrEqualTo checks whether the first argument is less than or equal to the second. Both
// arguments must have the same numeric underlying type. This method returns an error with the
// provided message if the check fails.
func LessThanOrEqualTo(actual, expected interface{}, msgAndArgs ...interface{}) error {
	cmp, ok := compare(actual, expected)
	if !ok {
		return check(false, msgAndArgs, "%s and %s are not comparable", format(actual),
			format(expected))
	}
	return check(cmp <= 0, msgAndArgs,
		"%s is not less than or equal to %s", format(actual), format(expected))
}
