package main

import (
	"itemsapi/internal/config"
	"itemsapi/internal/database"
	"itemsapi/internal/logger"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, _, err := logger.New(cfg)
			if err != nil {
				return err
			}

			return database.Migrate(cmd.Context(), log, cfg)
		},
	}
}
