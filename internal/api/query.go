package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

type queryValuer interface {
	queryValue() (any, bool)
}

// FlattenQuery builds query parameters from a struct whose fields carry
// `url:"name"` tags. Slices become repeated keys (ids=1&ids=2), unset
// Optionals and nil pointers or slices are skipped. A nil params value
// yields nil.
func FlattenQuery(params any) url.Values {
	if params == nil {
		return nil
	}
	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	values := url.Values{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("url"), ",")
		if name == "" || name == "-" {
			continue
		}
		addQueryValue(values, name, v.Field(i))
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func addQueryValue(values url.Values, name string, fv reflect.Value) {
	if fv.CanInterface() {
		if qv, ok := fv.Interface().(queryValuer); ok {
			inner, set := qv.queryValue()
			if set {
				addQueryValue(values, name, reflect.ValueOf(inner))
			}
			return
		}
	}

	switch fv.Kind() {
	case reflect.Invalid:
		return
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return
		}
		addQueryValue(values, name, fv.Elem())
	case reflect.Slice, reflect.Array:
		if fv.Kind() == reflect.Slice && fv.IsNil() {
			return
		}
		for j := 0; j < fv.Len(); j++ {
			values.Add(name, fmt.Sprint(fv.Index(j).Interface()))
		}
	default:
		values.Add(name, fmt.Sprint(fv.Interface()))
	}
}
