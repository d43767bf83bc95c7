package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"
	"masterboxer.com/project-forum/config"
	"masterboxer.com/project-forum/database"
)

type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "forum",
		Short:         "Forum backend: posts and comments over HTTP",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := initLogger(cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(newServeCmd(a), newMigrateCmd(a))
	return root
}

// openDB connects with the configured driver and applies the schema.
func (a *app) openDB(ctx context.Context, reset bool) (*sql.DB, error) {
	dialect, err := database.DialectFor(a.cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	db, err := database.ConnectDB(ctx, a.cfg.DBDriver, a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(ctx, db, dialect, reset); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("schema ready", "driver", a.cfg.DBDriver, "reset", reset)
	return db, nil
}
