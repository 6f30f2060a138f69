// Package main is the ReachFood admin CLI.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	awsclient "github.com/reachfood2024-code/reachfood-sub000/internal/client/aws"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/interfaces"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
)

// app holds what the commands need. Services are created on first use so
// that commands without a database, like hash-key, work offline.
type app struct {
	stage string
	now   func() time.Time

	pool     *pgxpool.Pool
	runner   db.TxRunner
	metrics  interfaces.MetricsService
	export   interfaces.ExportService
	connect  func(ctx context.Context) error
	catalog  []byte
	migrator func(ctx context.Context) ([]string, error)
}

func newApp() *app {
	a := &app{now: time.Now, catalog: db.CatalogYAML}
	a.connect = a.connectDatabase
	a.migrator = func(ctx context.Context) ([]string, error) {
		return db.Migrate(ctx, a.pool)
	}
	return a
}

func (a *app) connectDatabase(ctx context.Context) error {
	if a.pool != nil {
		return nil
	}

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return errors.Wrap(err, "secrets manager")
	}
	dsn, err := secrets.ResolveDatabaseURL(ctx, a.stage != helpers.StageLocal)
	if err != nil {
		return errors.Wrap(err, "resolve database URL")
	}
	pool, err := helpers.NewPool(ctx, dsn, helpers.WorkerPoolOptions)
	if err != nil {
		return err
	}

	queries := db.New(pool)
	a.pool = pool
	a.runner = helpers.NewTxRunner(pool)
	a.metrics = services.NewMetricsService(queries,
		helpers.NewTxRunner(pool, helpers.WithConflictRetries(services.RollupConflictRetries)))
	a.export = services.NewExportService(services.NewOrderService(services.OrderServiceConfig{
		Queries:  queries,
		TxRunner: a.runner,
	}))
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "reachfoodctl",
		Short:         "ReachFood administration",
		Long:          `reachfoodctl applies schema migrations, seeds the catalog, rolls up dashboard metrics and exports orders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !helpers.IsValidStage(a.stage) {
				return errors.Errorf("invalid stage %q", a.stage)
			}
			logger.InitLogger(a.stage)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.stage, "stage", envOr("STAGE", helpers.StageLocal), "Stage: local, dev or prod")

	root.AddCommand(
		a.migrateCommand(),
		a.seedCommand(),
		a.rollupCommand(),
		a.renderCommand(),
		a.exportCommand(),
		a.hashKeyCommand(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	a := newApp()
	defer a.close()

	if err := a.rootCommand().Execute(); err != nil {
		log.Printf("Error: %v", err)
		a.close()
		os.Exit(1)
	}
}
