// Command furnishopctl inspects and administers the furnishop client store.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"furnishop/config"
	logs "furnishop/internal/infra/log"

	"go.uber.org/fx"
)

func main() {
	infra := fx.Provide(
		config.New,
		// Keep stdout for command output.
		func(cfg *config.Config) (*slog.Logger, error) {
			return logs.NewWithWriter(cfg, os.Stderr)
		},
	)

	if err := newRootCmd(infra).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
