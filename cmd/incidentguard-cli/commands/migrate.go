package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/incidentguard/database"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(
		newMigrateUpCommand(),
		newMigrateDownCommand(),
		newMigrateVersionCommand(),
	)
	return &migrate
}

// withDatabase opens the database for a single command and closes the pool
// afterwards.
func withDatabase(f func(db shared.DB) error) error {
	shared.LoadConfig() // nolint
	db, pool, err := database.DatabaseFactory()
	if err != nil {
		return err
	}
	defer pool.Close()
	return f(db)
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db shared.DB) error {
				if err := database.RunMigrationsWithDB(db); err != nil {
					return err
				}
				slog.Info("database is up to date")
				return nil
			})
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			if steps <= 0 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			return withDatabase(func(db shared.DB) error {
				if err := database.RollbackMigrationsWithDB(db, steps); err != nil {
					return err
				}
				slog.Info("rolled back migrations", "steps", steps)
				return nil
			})
		},
	}
	down.Flags().Int("steps", 1, "number of migrations to roll back")
	return down
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db shared.DB) error {
				version, dirty, err := database.GetMigrationVersionWithDB(db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
				return nil
			})
		},
	}
}
