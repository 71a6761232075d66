package cfgm

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	yamlv3 "go.yaml.in/yaml/v3"
)

// exampleHeader 是 [ExampleYAML] 输出的首行注释。
const exampleHeader = "# 配置示例文件, 复制此文件为 config.yaml 并根据需要修改"

// ExampleYAML 根据默认配置生成带注释的 YAML 示例。
//
// 注释取自字段的 desc 标签；嵌套结构体前会插入空行与描述注释。
// 字符串使用单引号，因此 ${VAR} 占位符会原样保留。
func ExampleYAML[T any](defaultConfig T) []byte {
	var b strings.Builder
	b.WriteString(exampleHeader)
	b.WriteByte('\n')
	writeExampleStruct(&b, reflect.ValueOf(defaultConfig), 0)

	return []byte(b.String())
}

func writeExampleStruct(b *strings.Builder, val reflect.Value, depth int) {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			val = reflect.New(val.Type().Elem())
		}
		val = val.Elem()
	}

	indent := strings.Repeat("  ", depth)
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		desc := field.Tag.Get("desc")

		if isStructType(field.Type) {
			b.WriteByte('\n')
			if desc != "" {
				fmt.Fprintf(b, "%s# %s\n", indent, desc)
			}
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			writeExampleStruct(b, val.Field(i), depth+1)

			continue
		}

		fmt.Fprintf(b, "%s%s: %s", indent, key, exampleScalar(val.Field(i)))
		if desc != "" {
			fmt.Fprintf(b, " # %s", desc)
		}
		b.WriteByte('\n')
	}
}

// exampleScalar 将叶子值格式化为单行 YAML。
func exampleScalar(val reflect.Value) string {
	switch val.Type() {
	case durationType:
		return time.Duration(val.Int()).String()
	case timeType:
		t, _ := val.Interface().(time.Time)

		return "'" + t.Format(time.RFC3339) + "'"
	}

	switch val.Kind() {
	case reflect.String:
		return "'" + strings.ReplaceAll(val.String(), "'", "''") + "'"
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Pointer, reflect.Interface:
		var node yamlv3.Node
		if err := node.Encode(val.Interface()); err != nil {
			return "null"
		}
		node.Style = yamlv3.FlowStyle
		out, err := yamlv3.Marshal(&node)
		if err != nil {
			return "null"
		}

		return strings.TrimSpace(string(out))
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}

// MarshalJSON 将配置结构体编码为两空格缩进的 JSON，key 取自 json tag。
//
// time.Duration 按 encoding/json 的规则输出为纳秒整数。
func MarshalJSON[T any](cfg T) []byte {
	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil
	}

	return out
}
