package server

import (
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/reachfood2024-code/reachfood-sub000/internal/helpers"
)

// Config is the API configuration read from the environment.
type Config struct {
	Stage            string
	AdminKeyHash     string
	OrderQueueURL    string
	SQSEndpoint      string
	BaseURL          string
	EmailFromAddress string
	EmailFromName    string
	OwnerEmail       string
	SupportEmail     string
	EnableScheduler  bool
}

// Deployed reports whether the stage runs in AWS.
func (c Config) Deployed() bool {
	return c.Stage != helpers.StageLocal
}

// LoadConfig reads the API settings. STAGE defaults to local. The in-process
// metrics scheduler is off inside Lambda, where cmd/metrics-rollup runs on a
// schedule instead.
func LoadConfig() Config {
	cfg := Config{
		Stage:            getEnvWithDefault("STAGE", helpers.StageLocal),
		AdminKeyHash:     os.Getenv("ADMIN_API_KEY_HASH"),
		OrderQueueURL:    os.Getenv("ORDER_EVENTS_QUEUE_URL"),
		SQSEndpoint:      os.Getenv("SQS_ENDPOINT"),
		BaseURL:          getEnvWithDefault("BASE_URL", "http://localhost:3000"),
		EmailFromAddress: getEnvWithDefault("EMAIL_FROM_ADDRESS", "orders@reachfood.com"),
		EmailFromName:    getEnvWithDefault("EMAIL_FROM_NAME", "ReachFood"),
		OwnerEmail:       os.Getenv("ORDER_NOTIFY_EMAIL"),
		SupportEmail:     os.Getenv("SUPPORT_EMAIL"),
		EnableScheduler:  os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "",
	}
	if v := os.Getenv("METRICS_SCHEDULER_ENABLED"); v != "" {
		cfg.EnableScheduler = cast.ToBool(v)
	}
	return cfg
}

func getEnvWithDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
