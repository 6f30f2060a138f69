package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_OrderedAndComplete(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)
	require.Len(t, migrations, 4)

	versions := make([]string, len(migrations))
	for i, m := range migrations {
		versions[i] = m.Version
		assert.NotEmpty(t, strings.TrimSpace(m.SQL))
	}
	assert.Equal(t, []string{"0001_catalog", "0002_orders", "0003_subscriptions", "0004_analytics"}, versions)

	all := ""
	for _, m := range migrations {
		all += m.SQL
	}
	for _, table := range []string{"products", "product_prices", "orders", "order_items", "subscriptions", "tracking_events", "daily_metrics"} {
		assert.Contains(t, all, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestCatalogYAMLEmbedded(t *testing.T) {
	assert.Contains(t, string(CatalogYAML), "products:")
	assert.Contains(t, string(CatalogYAML), "slug: family-meal-box")
}
