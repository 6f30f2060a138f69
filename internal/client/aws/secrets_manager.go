package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/reachfood2024-code/reachfood-sub000/internal/logger"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain.
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretID string) (string, error) {
	if c == nil || c.svc == nil {
		return "", fmt.Errorf("secrets manager client not configured")
	}
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s is empty", secretID)
	}
	return *result.SecretString, nil
}

// GetSecretString reads the secret whose ARN is held in secretIdEnvVar. When
// that variable is unset or the fetch fails it falls back to the plain value
// of fallbackEnvVar.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretIdEnvVar, fallbackEnvVar string) (string, error) {
	if secretID := os.Getenv(secretIdEnvVar); secretID != "" {
		value, err := c.fetch(ctx, secretID)
		if err == nil {
			logger.Log.Debug("Fetched secret from Secrets Manager", zap.String("envVar", secretIdEnvVar))
			return value, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretIdEnvVar", secretIdEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found using env var '%s' or '%s'", secretIdEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a JSON secret and unmarshals it into target. There is
// no env fallback.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretIdEnvVar string, target interface{}) error {
	secretID := os.Getenv(secretIdEnvVar)
	if secretID == "" {
		return fmt.Errorf("%s is not set", secretIdEnvVar)
	}

	value, err := c.fetch(ctx, secretID)
	if err != nil {
		return fmt.Errorf("failed to fetch secret from %s: %w", secretIdEnvVar, err)
	}

	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("failed to parse secret from %s: %w", secretIdEnvVar, err)
	}
	return nil
}

// RDSSecret is the credential pair stored by RDS managed secrets.
type RDSSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DatabaseConfig names where database connection settings come from.
type DatabaseConfig struct {
	Host    string
	Name    string
	SSLMode string
}

// DatabaseConfigFromEnv reads DB_HOST, DB_NAME and DB_SSLMODE.
func DatabaseConfigFromEnv() DatabaseConfig {
	cfg := DatabaseConfig{
		Host:    os.Getenv("DB_HOST"),
		Name:    os.Getenv("DB_NAME"),
		SSLMode: os.Getenv("DB_SSLMODE"),
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "require"
	}
	return cfg
}

// BuildDSN renders a postgres connection string from an RDS secret.
func BuildDSN(secret RDSSecret, cfg DatabaseConfig) (string, error) {
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password missing from RDS secret")
	}
	if cfg.Host == "" || cfg.Name == "" {
		return "", fmt.Errorf("DB_HOST and DB_NAME are required")
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(secret.Username, secret.Password),
		Host:     cfg.Host,
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return dsn.String(), nil
}

// ResolveDatabaseURL returns the DSN for a stage. Deployed stages build it
// from the RDS_SECRET_ARN secret; local reads DATABASE_URL (or its ARN).
func (c *SecretsManagerClient) ResolveDatabaseURL(ctx context.Context, deployed bool) (string, error) {
	if !deployed {
		return c.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}

	var secret RDSSecret
	if err := c.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", err
	}
	return BuildDSN(secret, DatabaseConfigFromEnv())
}
