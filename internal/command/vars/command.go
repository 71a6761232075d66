// Package vars 提供 vars 子命令：列出文档引用的变量。
package vars

import (
	"github.com/urfave/cli/v3"
)

// New 创建 vars 命令
func New() *cli.Command {
	return &cli.Command{
		Name:      "vars",
		Usage:     "列出 YAML/JSON 文档中引用的 ${VAR} 变量名",
		ArgsUsage: "[FILE|-]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "missing",
				Aliases: []string{"m"},
				Usage:   "仅列出当前环境中未设置的变量，存在时以非零状态退出",
			},
			&cli.StringFlag{
				Name:  "input-format",
				Usage: "输入格式 (yaml|json)，留空按扩展名推断",
			},
		},
	}
}
