package check

import (
	"fmt"
	"reflect"
)

func format(i interface{}) string {
	v := reflect.ValueOf(i)
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return fmt.Sprintf("%v", i)
	}
	if reflect.TypeOf(i) == v.Type() {
		return fmt.Sprintf("%+v", i)
	}
	return fmt.Sprintf("%T(%+v)", i, v.Interface())
}

func messageFromMsgAndArgs(formatPointers bool, msgAndArgs ...interface{}) string {
	switch {
	case len(msgAndArgs) == 1:
		switch msg := msgAndArgs[0].(type) {
		case string:
			return msg
		default:
			return format(msg)
		}
	case len(msgAndArgs) > 1:
		args := make([]interface{}, 0, len(msgAndArgs)-1)
		for _, arg := range msgAndArgs[1:] {
			if formatPointers {
				args = append(args, format(arg))
			} else {
				args = append(args, arg)
			}
		}
		return fmt.Sprintf(msgAndArgs[0].(string), args...)
	default:
		return ""
	}
}
