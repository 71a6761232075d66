package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lwmacct/251016-go-pkg-envsub/internal/app"
)

func main() {
	if err := app.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("envsub failed", "error", err)
		os.Exit(1)
	}
}
