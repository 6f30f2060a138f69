package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/reachfood2024-code/reachfood-sub000/internal/client/aws"
	"github.com/reachfood2024-code/reachfood-sub000/internal/db"
	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
	"github.com/reachfood2024-code/reachfood-sub000/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'", stage)
	}

	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()
	logger.Info("Lambda cold start: initializing metrics rollup", zap.String("stage", stage))

	ctx := context.Background()

	secrets, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := secrets.ResolveDatabaseURL(ctx, stage != helpers.StageLocal)
	if err != nil {
		logger.Fatal("Failed to resolve database URL", zap.Error(err))
	}

	pool, err := helpers.NewPool(ctx, dsn, helpers.WorkerPoolOptions)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	app := &Application{
		metrics: services.NewMetricsService(db.New(pool),
			helpers.NewTxRunner(pool, helpers.WithConflictRetries(services.RollupConflictRetries))),
		logger:  logger.Log,
		now:     time.Now,
	}
	lambda.Start(app.HandleRequest)
}
