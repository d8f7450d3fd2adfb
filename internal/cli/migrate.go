package cli

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/nikolayk812/storefront/internal/migrate"
	"github.com/spf13/cobra"
)

func newMigrateCommand(app *App, rootOpts *RootOptions) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the postgres cart schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				dsn = app.Config.DB.DSN
			}
			if dsn == "" {
				return fmt.Errorf("db dsn is empty")
			}

			ctx := cmd.Context()

			pool, err := pgxpool.New(ctx, dsn)
			if err != nil {
				return fmt.Errorf("pgxpool.New: %w", err)
			}
			defer pool.Close()

			sqlDB := stdlib.OpenDBFromPool(pool)

			if err := migrate.Up(ctx, sqlDB); err != nil {
				return fmt.Errorf("migrate.Up: %w", err)
			}

			version, err := migrate.Version(ctx, sqlDB)
			if err != nil {
				return fmt.Errorf("migrate.Version: %w", err)
			}

			app.Logger.Info(app.Logger.WithField(ctx, "version", version), "migrations applied")

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]int64{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres dsn, defaults to STOREFRONT_DB_DSN")

	return cmd
}
