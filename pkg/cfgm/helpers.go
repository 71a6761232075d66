package cfgm

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// configTagName 返回字段的配置 key（json tag 名称），"-" 或缺失时返回空字符串。
func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" || !field.IsExported() {
		return ""
	}

	return name
}

// isStructType 判断是否为需要展开的嵌套结构体（排除 time.Time 等叶子类型）。
func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

func derefType(typ reflect.Type) reflect.Type {
	if typ.Kind() == reflect.Pointer {
		return typ.Elem()
	}

	return typ
}

// configField 描述一个带配置 key 的结构体字段。
type configField struct {
	field  reflect.StructField
	key    string // 完整 key，如 render.input-format
	nested bool   // 是否为嵌套结构体
}

// walkConfigFields 按声明顺序深度优先遍历配置字段；嵌套结构体先于其子字段回调。
func walkConfigFields(typ reflect.Type, fn func(f configField)) {
	walkConfigFieldsRecursive(derefType(typ), "", fn)
}

func walkConfigFieldsRecursive(typ reflect.Type, prefix string, fn func(f configField)) {
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		nested := isStructType(field.Type)
		fn(configField{field: field, key: key, nested: nested})
		if nested {
			walkConfigFieldsRecursive(derefType(field.Type), key, fn)
		}
	}
}

// collectConfigKeys 收集配置结构体的叶子 key（如 client.rev-auth-user）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	walkConfigFields(reflect.TypeOf(defaultConfig), func(f configField) {
		if !f.nested {
			keys = append(keys, f.key)
		}
	})

	return keys
}

// structToMap 将配置结构体转为以 json tag 为 key 的 map。
func structToMap(cfg any) map[string]any {
	out, ok := toAny(reflect.ValueOf(cfg)).(map[string]any)
	if !ok {
		return map[string]any{}
	}

	return out
}

func toAny(val reflect.Value) any {
	if !val.IsValid() {
		return nil
	}
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch {
	case isStructType(val.Type()):
		out := make(map[string]any)
		typ := val.Type()
		for i := range typ.NumField() {
			if key := configTagName(typ.Field(i)); key != "" {
				out[key] = toAny(val.Field(i))
			}
		}

		return out
	case val.Kind() == reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = toAny(val.Index(i))
		}

		return out
	case val.Kind() == reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprintf("%v", iter.Key().Interface())] = toAny(iter.Value())
		}

		return out
	default:
		return val.Interface()
	}
}

// mergeMaps 将 src 深度合并到 dst，嵌套 map 递归合并，其余值直接覆盖。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcOK := value.(map[string]any)
		dstMap, dstOK := dst[key].(map[string]any)
		if srcOK && dstOK {
			mergeMaps(dstMap, srcMap)

			continue
		}
		dst[key] = value
	}
}

// setByPath 按点分路径写入值，中间层不存在时自动创建。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
