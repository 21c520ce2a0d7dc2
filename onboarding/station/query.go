package station

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// BuildURLQuery encodes params the way Station expects them. Keys are sorted,
// zero values (nil, "", 0, false, empty slices) are omitted, and slice values
// are joined with commas under "key[]".
//
//	BuildURLQuery(map[string]interface{}{"a": 1, "b": []int{1, 2}}) == "a=1&b%5B%5D=1%2C2"
func BuildURLQuery(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := reflect.ValueOf(params[k])
		if isFalsy(v) {
			continue
		}
		v = indirect(v)

		if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
			values := make([]string, v.Len())
			for i := 0; i < v.Len(); i++ {
				values[i] = format(v.Index(i))
			}
			parts = append(parts, url.QueryEscape(k+"[]")+"="+url.QueryEscape(strings.Join(values, ",")))
			continue
		}

		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(format(v)))
	}

	return strings.Join(parts, "&")
}

func isFalsy(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isFalsy(v.Elem())
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	}
	return v.IsZero()
}

func indirect(v reflect.Value) reflect.Value {
	for (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// format renders the value a pointer refers to, never its address. Nil
// elements render empty.
func format(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() || ((v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil()) {
		return ""
	}
	return fmt.Sprint(v.Interface())
}
