package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gametaverns/tournament-engine/internal/config"
	"github.com/gametaverns/tournament-engine/internal/db"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(migrateCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <roster.yaml>",
	Short: "Print the bracket a roster would produce",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open roster: %w", err)
		}
		defer f.Close()

		cfg, participants, err := loadRoster(f)
		if err != nil {
			return err
		}
		return renderPreview(cmd.OutOrStdout(), cfg, participants)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations to the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		database, err := db.InitDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.RunMigrations(database.DB, cfg.DBDriver, cfg.MigrationsDir); err != nil {
			return err
		}
		slog.Info("migrations applied", "driver", cfg.DBDriver, "dir", cfg.MigrationsDir)
		return nil
	},
}
