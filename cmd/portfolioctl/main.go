package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/portfolio-backend/portfolio-api/config"
	"github.com/portfolio-backend/portfolio-api/internal/bootstrap"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/service"
	"github.com/portfolio-backend/portfolio-api/internal/storage/postgres"
	"github.com/portfolio-backend/portfolio-api/internal/summary"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Portfolio backend admin CLI",
		SilenceUsage: true,
	}

	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}
	dbMigrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the PostgreSQL tables if they do not exist",
		RunE:  runDBMigrate,
	}
	dbCmd.AddCommand(dbMigrateCmd)

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Render the HTML summary page to stdout",
		RunE:  runSummary,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the configured application version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.App.Name, cfg.App.Version)
			return nil
		},
	}

	rootCmd.AddCommand(dbCmd, summaryCmd, versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runDBMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Store.Driver != config.StorePostgres {
		return fmt.Errorf("db migrate needs STORE_DRIVER=%s, got %q", config.StorePostgres, cfg.Store.Driver)
	}

	ctx := cmd.Context()
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Printf("[db] schema applied to %s", cfg.Database.Name)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	backend, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	page := summary.NewHandler(
		service.NewProjectService(backend.Stores.Projects),
		service.NewExperienceService(backend.Stores.Experiences),
	)
	var buf bytes.Buffer
	if err := page.Build(ctx, &buf); err != nil {
		return err
	}
	_, err = buf.WriteTo(cmd.OutOrStdout())
	return err
}
