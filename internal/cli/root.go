// Package cli implements scorectl, the offline scoring and maintenance tool.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/inkblot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/inkblot-backend/internal/app"
	"github.com/heartmarshall/inkblot-backend/internal/config"
)

// NewRootCmd creates the scorectl command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "scorectl",
		Short: "Score and validate coded inkblot protocols",
		Long: `scorectl scores protocol files offline and maintains stored protocols.

The validate, normalize and score commands work on YAML protocol files and
need no database. import, export and rescore read the server configuration
from the environment.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file for database commands (default $CONFIG_PATH or ./config.yaml)")

	open := func(ctx context.Context) (*app.Services, func(), error) {
		if cfgFile == "" {
			cfgFile = os.Getenv("CONFIG_PATH")
		}
		return openServices(ctx, cfgFile)
	}

	root.AddCommand(
		newValidateCmd(),
		newNormalizeCmd(),
		newScoreCmd(),
		newImportCmd(open),
		newExportCmd(open),
		newRescoreCmd(open),
	)
	return root
}

type servicesOpener func(ctx context.Context) (*app.Services, func(), error)

// openServices connects to the configured stores. The returned cleanup
// closes every connection.
func openServices(ctx context.Context, path string) (*app.Services, func(), error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	rdb, err := app.NewRedis(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to report cache: %w", err)
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		pool.Close()
	}
	return app.NewServices(cfg, logger, pool, rdb), cleanup, nil
}
