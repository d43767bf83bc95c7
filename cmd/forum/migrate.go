package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the posts and comments tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("running schema migration")

			db, err := a.openDB(cmd.Context(), reset || a.cfg.ResetSchema)
			if err != nil {
				return err
			}
			defer db.Close()

			slog.Info("schema migration finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "drop existing tables first (destroys all data)")
	return cmd
}
