package envsub

import (
	"reflect"
	"regexp"
	"strings"
)

// placeholderPattern 匹配 ${name}，name 非贪婪，截止到第一个 "}"。
var placeholderPattern = regexp.MustCompile(`\$\{(.+?)\}`)

// SubstituteString 替换 s 中的全部 ${name} 占位符。
//
// 查找失败的占位符替换为空字符串。不含占位符时原样返回 s。
func SubstituteString(s string, lookup Reader) string {
	if !strings.Contains(s, "${") {
		return s
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		// match 形如 ${name}
		val, _ := lookup.LookupEnv(match[2 : len(match)-1])

		return val
	})
}

// Substitute 递归替换 value 中所有字符串叶子的占位符，返回同形状的新值。
//
// 支持的节点：
//   - 序列: []any、任意类型切片、数组
//   - 映射: map[string]any、map[any]any、任意类型 map（key 不替换）
//   - 结构体: 导出字段逐一替换，未导出字段原样复制
//   - 指针 / 接口: 对指向的值替换后重新包装
//   - 字符串: 包括以 string 为底层类型的自定义类型
//
// 其他值（数字、布尔、nil、func、chan 等）原样返回。输入必须是无环的。
func Substitute[T any](value T, lookup Reader) T {
	out, ok := substitute(any(value), lookup).(T)
	if !ok {
		// 仅当 T 为接口类型且 value 为 nil 时到达这里
		return value
	}

	return out
}

// SubstituteEnv 等价于 Substitute(value, OSReader{})。
func SubstituteEnv[T any](value T) T {
	return Substitute(value, OSReader{})
}

func substitute(value any, lookup Reader) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return SubstituteString(typed, lookup)
	case []any:
		if typed == nil {
			return typed
		}
		out := make([]any, len(typed))
		for i, elem := range typed {
			out[i] = substitute(elem, lookup)
		}

		return out
	case map[string]any:
		if typed == nil {
			return typed
		}
		out := make(map[string]any, len(typed))
		for key, elem := range typed {
			out[key] = substitute(elem, lookup)
		}

		return out
	case map[any]any:
		if typed == nil {
			return typed
		}
		out := make(map[any]any, len(typed))
		for key, elem := range typed {
			out[key] = substitute(elem, lookup)
		}

		return out
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return typed
	default:
		return substituteValue(reflect.ValueOf(value), lookup).Interface()
	}
}

// substituteValue 是带类型容器的反射实现。
func substituteValue(val reflect.Value, lookup Reader) reflect.Value {
	switch val.Kind() {
	case reflect.String:
		out := reflect.New(val.Type()).Elem()
		out.SetString(SubstituteString(val.String(), lookup))

		return out

	case reflect.Slice:
		if val.IsNil() {
			return val
		}
		out := reflect.MakeSlice(val.Type(), val.Len(), val.Len())
		for i := range val.Len() {
			out.Index(i).Set(substituteValue(val.Index(i), lookup))
		}

		return out

	case reflect.Array:
		out := reflect.New(val.Type()).Elem()
		for i := range val.Len() {
			out.Index(i).Set(substituteValue(val.Index(i), lookup))
		}

		return out

	case reflect.Map:
		if val.IsNil() {
			return val
		}
		out := reflect.MakeMapWithSize(val.Type(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), substituteValue(iter.Value(), lookup))
		}

		return out

	case reflect.Struct:
		out := reflect.New(val.Type()).Elem()
		out.Set(val)
		typ := val.Type()
		for i := range typ.NumField() {
			if !typ.Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(substituteValue(val.Field(i), lookup))
		}

		return out

	case reflect.Pointer:
		if val.IsNil() {
			return val
		}
		out := reflect.New(val.Type().Elem())
		out.Elem().Set(substituteValue(val.Elem(), lookup))

		return out

	case reflect.Interface:
		if val.IsNil() {
			return val
		}
		out := reflect.New(val.Type()).Elem()
		out.Set(reflect.ValueOf(substitute(val.Elem().Interface(), lookup)))

		return out

	default:
		return val
	}
}
