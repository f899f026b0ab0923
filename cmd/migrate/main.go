// Package main implements the database migration utility for crm-comms.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/infrastructure/migrate"
)

const defaultMigrateSteps = 1

var (
	configPath     string
	migrationsPath string
	databaseURL    string
)

func main() {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the crm-comms database schema",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	root.PersistentFlags().StringVar(&migrationsPath, "path", "", "Path to migrations directory (overrides config)")
	root.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Database URL (overrides config)")

	root.AddCommand(upCmd(), downCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func upCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner()
			if err != nil {
				return err
			}
			if steps > 0 {
				err = runner.Steps(steps)
			} else {
				err = runner.Run()
			}
			if err != nil {
				return err
			}
			return printVersion(cmd, runner)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of migrations to apply (0 applies all)")
	return cmd
}

func downCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive")
			}
			runner, err := newRunner()
			if err != nil {
				return err
			}
			if err := runner.Steps(-steps); err != nil {
				return err
			}
			return printVersion(cmd, runner)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", defaultMigrateSteps, "Number of migrations to roll back")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := newRunner()
			if err != nil {
				return err
			}
			return printVersion(cmd, runner)
		},
	}
}

func newRunner() (*migrate.Runner, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg := &migrate.Config{DatabaseURL: databaseURL, MigrationsPath: migrationsPath}
	if cfg.DatabaseURL == "" || cfg.MigrationsPath == "" {
		appCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = appCfg.Database.GetURL()
		}
		if cfg.MigrationsPath == "" {
			cfg.MigrationsPath = appCfg.Database.MigrationsPath
		}
	}

	return migrate.NewRunner(cfg, logger), nil
}

func printVersion(cmd *cobra.Command, runner *migrate.Runner) error {
	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		cmd.Printf("Current version: %d (dirty)\n", version)
	} else {
		cmd.Printf("Current version: %d\n", version)
	}
	return nil
}
