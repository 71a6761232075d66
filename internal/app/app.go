// Package app 组装 envsub 根命令。
package app

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/command"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/command/configcmd"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/command/render"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/command/vars"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/version"
)

// New 创建根命令，每次调用返回独立实例。
func New() *cli.Command {
	return &cli.Command{
		Name:    version.AppRawName,
		Usage:   "替换 YAML/JSON 配置中的 ${VAR} 环境变量占位符",
		Version: version.GetVersion(),
		Flags:   command.GlobalFlags(),
		Commands: []*cli.Command{
			render.New(),
			vars.New(),
			configcmd.New(),
			version.New(),
		},
	}
}
