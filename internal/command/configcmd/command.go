// Package configcmd 提供 config 子命令，用于查看 envsub 自身的配置。
package configcmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/command"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/config"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/cfgm"
)

// New 创建 config 命令
func New() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "查看 envsub 配置",
		Commands: []*cli.Command{
			{
				Name:   "example",
				Usage:  "输出带注释的示例配置 (YAML)",
				Action: exampleAction,
			},
			{
				Name:   "show",
				Usage:  "输出合并后的生效配置 (JSON)",
				Action: showAction,
			},
		},
	}
}

func exampleAction(_ context.Context, cmd *cli.Command) error {
	_, err := cmd.Root().Writer.Write(cfgm.ExampleYAML(config.DefaultConfig()))

	return err
}

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	_, err = cmd.Root().Writer.Write(append(cfgm.MarshalJSON(*cfg), '\n'))

	return err
}
