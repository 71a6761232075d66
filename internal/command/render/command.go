// Package render 提供 render 子命令：替换文档中的 ${VAR} 占位符并输出。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/command"
)

// New 创建 render 命令
func New() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "替换 YAML/JSON 文档中的 ${VAR} 占位符",
		ArgsUsage: "[FILE|-]",
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "render-input-format",
				Value: command.Defaults.Render.InputFormat,
				Usage: "输入格式 (yaml|json)，留空按扩展名推断",
			},
			&cli.StringFlag{
				Name:    "render-format",
				Aliases: []string{"f"},
				Value:   command.Defaults.Render.Format,
				Usage:   "输出格式 (yaml|json)，留空与输入一致",
			},
			&cli.StringFlag{
				Name:    "render-output",
				Aliases: []string{"o"},
				Value:   command.Defaults.Render.Output,
				Usage:   "输出文件路径，留空或 - 写入 stdout",
			},
			&cli.BoolFlag{
				Name:  "render-strict",
				Value: command.Defaults.Render.Strict,
				Usage: "存在未设置的变量时报错",
			},
		},
	}
}
