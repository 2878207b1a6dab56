package main

import (
	"database/sql"
	"fmt"
	"os"

	"crowdfund/migrations"
	"crowdfund/pkg/config"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	dir string
	dsn string
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply and inspect the crowdfund database schema",
	Long: `Runs the goose SQL migrations against PostgreSQL.

Connection settings come from DB_* environment variables (or .env) unless
--dsn is given. Migrations are read from the binary unless --dir is given.

Examples:
  migrate up
  migrate down
  migrate status
  migrate create add_campaign_tags`,
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB, source string) error {
			if err := goose.Up(db, source); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("Migrations applied successfully")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB, source string) error {
			if err := goose.Down(db, source); err != nil {
				return fmt.Errorf("failed to rollback migrations: %w", err)
			}
			fmt.Println("Migrations rolled back successfully")
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations have been applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB, source string) error {
			return goose.Status(db, source)
		})
	},
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new SQL migration in --dir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := dir
		if target == "" {
			target = "migrations"
		}
		if err := goose.Create(nil, target, args[0], "sql"); err != nil {
			return fmt.Errorf("failed to create migration: %w", err)
		}
		fmt.Printf("Created migration: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Read migrations from this directory instead of the embedded set")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (defaults to DB_* settings)")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, createCmd)
}

// withDB opens the database, selects the migration source and runs fn.
func withDB(fn func(db *sql.DB, source string) error) error {
	connStr := dsn
	if connStr == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		connStr = cfg.DSN()
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	source := "."
	if dir != "" {
		goose.SetBaseFS(nil)
		source = dir
	} else {
		goose.SetBaseFS(migrations.FS)
	}
	return fn(db, source)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
