package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fsanano/stockmgmt/internal/config"
	"fsanano/stockmgmt/internal/logging"
	"fsanano/stockmgmt/internal/repository"
	"fsanano/stockmgmt/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "stockctl",
		Short:        "Operator commands for the stock management backend",
		SilenceUsage: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedAdminCmd(), newReportCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd.Context(), func(ctx context.Context, _ *config.Config, repo *repository.Repository) error {
				if err := repo.Migrate(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
				return nil
			})
		},
	}
}

func newSeedAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the configured admin account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd.Context(), func(ctx context.Context, cfg *config.Config, repo *repository.Repository) error {
				users := service.NewUserService(repo, cfg.BcryptCost, cfg.Admin.Email)
				created, err := users.EnsureAdmin(ctx, service.AdminAccount{
					Username:    cfg.Admin.Username,
					Email:       cfg.Admin.Email,
					PhoneNumber: cfg.Admin.PhoneNumber,
					Address:     cfg.Admin.Address,
					Password:    cfg.Admin.Password,
				})
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created\n", cfg.Admin.Email)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Admin %s already exists\n", cfg.Admin.Email)
				}
				return nil
			})
		},
	}
}

func newReportCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the catalog analytics summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd.Context(), func(ctx context.Context, _ *config.Config, repo *repository.Repository) error {
				summary, err := service.NewAnalyticsService(repo).Summary(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary, pretty)
			})
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func withRepository(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, repo *repository.Repository) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return fn(ctx, cfg, repository.New(pool))
}

func printJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
