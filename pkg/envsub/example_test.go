package envsub_test

import (
	"fmt"

	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

// Example_substitute 演示对动态配置树的替换。
func Example_substitute() {
	env := envsub.MapReader{"X": "1", "Y": "2"}

	out := envsub.Substitute(map[string]any{
		"a": "${X}",
		"b": []any{1, "${Y}", true},
	}, env)
	fmt.Println(out)

	// Output:
	// map[a:1 b:[1 2 true]]
}

// Example_substituteStruct 演示对带类型结构体的替换。
func Example_substituteStruct() {
	type Database struct {
		DSN  string
		Pool int
	}

	env := envsub.MapReader{"DB_USER": "app"}
	db := envsub.Substitute(Database{DSN: "postgres://${DB_USER}@${DB_HOST}/main", Pool: 4}, env)
	fmt.Printf("%s %d\n", db.DSN, db.Pool)

	// Output:
	// postgres://app@/main 4
}

// Example_missing 演示检查缺失变量。
func Example_missing() {
	env := envsub.MapReader{"HOST": "localhost"}
	tree := []any{"${HOST}:${PORT}", "${TOKEN}"}

	fmt.Println(envsub.Placeholders(tree))
	fmt.Println(envsub.Missing(tree, env))

	_, err := envsub.SubstituteStrict(tree, env)
	fmt.Println(err)

	// Output:
	// [HOST PORT TOKEN]
	// [PORT TOKEN]
	// envsub: missing variables: PORT, TOKEN
}
