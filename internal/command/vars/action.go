package vars

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/command"
	"github.com/lwmacct/251016-go-pkg-envsub/internal/document"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
)

func action(_ context.Context, cmd *cli.Command) error {
	if _, err := command.Setup(cmd); err != nil {
		return err
	}

	path := cmd.Args().First()
	format := document.FormatFromPath(path)
	if name := cmd.String("input-format"); name != "" {
		f, err := document.ParseFormat(name)
		if err != nil {
			return err
		}
		format = f
	}

	content, err := command.ReadInput(cmd, path)
	if err != nil {
		return err
	}
	tree, err := document.Decode(format, content)
	if err != nil {
		return err
	}

	names := envsub.Placeholders(tree)
	if cmd.Bool("missing") {
		names = envsub.Missing(tree, envsub.OSReader{})
	}

	w := cmd.Root().Writer
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	if cmd.Bool("missing") && len(names) > 0 {
		return fmt.Errorf("%d variable(s) not set", len(names))
	}

	return nil
}
