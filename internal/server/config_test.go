package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"STAGE", "BASE_URL", "EMAIL_FROM_NAME", "METRICS_SCHEDULER_ENABLED", "ORDER_EVENTS_QUEUE_URL", "AWS_LAMBDA_FUNCTION_NAME"} {
			t.Setenv(key, "")
		}

		cfg := LoadConfig()
		assert.Equal(t, "local", cfg.Stage)
		assert.False(t, cfg.Deployed())
		assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
		assert.Equal(t, "ReachFood", cfg.EmailFromName)
		assert.True(t, cfg.EnableScheduler)
		assert.Empty(t, cfg.OrderQueueURL)
	})

	t.Run("deployed", func(t *testing.T) {
		t.Setenv("STAGE", "prod")
		t.Setenv("ORDER_EVENTS_QUEUE_URL", "https://sqs.us-east-1.amazonaws.com/123/order-events")
		t.Setenv("METRICS_SCHEDULER_ENABLED", "false")

		cfg := LoadConfig()
		assert.True(t, cfg.Deployed())
		assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/123/order-events", cfg.OrderQueueURL)
		assert.False(t, cfg.EnableScheduler)
	})
}

func TestSplitEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://reachfood.com, ,https://admin.reachfood.com ")
	assert.Equal(t, []string{"https://reachfood.com", "https://admin.reachfood.com"}, splitEnvList("CORS_ALLOWED_ORIGINS", nil))

	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Equal(t, []string{"http://localhost:3000"}, splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}))
}
