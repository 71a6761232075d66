package render

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/command"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/config"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/document"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	path := cmd.Args().First()
	inFormat, outFormat, err := formats(cfg.Render, path)
	if err != nil {
		return err
	}

	content, err := command.ReadInput(cmd, path)
	if err != nil {
		return err
	}

	tree, err := document.Decode(inFormat, content)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}

	var lookup envsub.Reader = envsub.OSReader{}
	if missing := envsub.Missing(tree, lookup); len(missing) > 0 {
		if cfg.Render.Strict {
			return fmt.Errorf("%s: %w", displayName(path), &envsub.MissingError{Names: missing})
		}
		slog.Warn("Unset variables replaced with empty string", "input", displayName(path), "vars", missing)
	}
	tree = envsub.Substitute(tree, lookup)

	out, err := document.Encode(outFormat, tree)
	if err != nil {
		return err
	}

	if cfg.Render.Output == "" || cfg.Render.Output == "-" {
		_, err = cmd.Root().Writer.Write(out)

		return err
	}
	if err := os.WriteFile(cfg.Render.Output, out, 0o644); err != nil { //nolint:gosec // rendered config is not secret by default
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Rendered", "input", displayName(path), "output", cfg.Render.Output, "format", outFormat)

	return nil
}

// formats 确定输入与输出格式。
func formats(cfg config.RenderConfig, path string) (document.Format, document.Format, error) {
	in := document.FormatFromPath(path)
	if cfg.InputFormat != "" {
		f, err := document.ParseFormat(cfg.InputFormat)
		if err != nil {
			return "", "", fmt.Errorf("input format: %w", err)
		}
		in = f
	}

	out := in
	if cfg.Format != "" {
		f, err := document.ParseFormat(cfg.Format)
		if err != nil {
			return "", "", fmt.Errorf("output format: %w", err)
		}
		out = f
	}

	return in, out, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}
