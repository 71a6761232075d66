// Package version 提供构建版本信息与 version 子命令。
package version

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，同时用于默认配置文件路径与环境变量前缀。
const AppRawName = "envsub"

// 以下变量通过 -ldflags "-X" 在构建时注入。
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// GetVersion 返回版本号；未注入时回退到 module 版本，再回退到 "dev"。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// New 创建 version 子命令。
func New() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "显示版本信息",
		Action: func(_ context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			_, _ = fmt.Fprintf(w, "%s %s\n", AppRawName, GetVersion())
			if Commit != "" {
				_, _ = fmt.Fprintf(w, "commit: %s\n", Commit)
			}
			if BuildTime != "" {
				_, _ = fmt.Fprintf(w, "built: %s\n", BuildTime)
			}
			_, _ = fmt.Fprintf(w, "go: %s\n", runtime.Version())

			return nil
		},
	}
}
