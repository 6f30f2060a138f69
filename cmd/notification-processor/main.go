package main

import (
	"context"
	"log"
	"os"

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
	logger.Info("Lambda cold start: initializing notification processor", zap.String("stage", stage))

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

	resendKey, err := secrets.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Fatal("Resend API key is required", zap.Error(err))
	}

	fromAddress := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromAddress == "" {
		fromAddress = "orders@reachfood.com"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "ReachFood"
	}

	emailService := services.NewEmailService(resendKey, fromAddress, fromName, logger.Log)
	notifications := services.NewNotificationService(db.New(pool), emailService, services.NotificationConfig{
		BaseURL:      os.Getenv("BASE_URL"),
		OwnerEmail:   os.Getenv("ORDER_NOTIFY_EMAIL"),
		SupportEmail: os.Getenv("SUPPORT_EMAIL"),
	})

	processor := NewProcessor(notifications, logger.Log)
	lambda.Start(processor.HandleSQSEvent)
}
