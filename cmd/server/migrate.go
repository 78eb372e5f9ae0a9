package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/config"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/repository"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := config.InitDB(cfg.DB)
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return fmt.Errorf("auto-migration failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}
