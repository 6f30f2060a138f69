package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/auth"
	"github.com/reachfood2024-code/reachfood-sub000/internal/chart"
	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/api/params"
	"github.com/reachfood2024-code/reachfood-sub000/internal/types/business"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type testApp struct {
	*app
	metrics *mocks.MockMetricsService
	export  *mocks.MockExportService
	connects int
}

func newTestApp(t *testing.T) *testApp {
	ctrl := gomock.NewController(t)
	ta := &testApp{
		metrics: mocks.NewMockMetricsService(ctrl),
		export:  mocks.NewMockExportService(ctrl),
	}
	ta.app = &app{now: func() time.Time { return fixedNow }}
	ta.app.metrics = ta.metrics
	ta.app.export = ta.export
	ta.app.connect = func(ctx context.Context) error {
		ta.connects++
		return nil
	}
	return ta
}

func (ta *testApp) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := ta.rootCommand()
	root.SetArgs(append([]string{"--stage", "local"}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func rendered(metric, title string, values []float64, dims chart.Dimensions) business.RenderedChart {
	return business.RenderedChart{
		Data:   business.ChartData{Metric: metric, Title: title, Currency: "USD"},
		Result: chart.Render(chart.SamplesFromValues(values), dims),
	}
}

func TestHashKeyCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{name: "argument", args: []string{"hash-key", "rf-admin-key"}},
		{name: "stdin", args: []string{"hash-key"}, stdin: "  rf-admin-key  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)

			out, _, err := ta.run(t, tt.stdin, tt.args...)
			require.NoError(t, err)

			hash := strings.TrimSpace(out)
			assert.NoError(t, auth.ValidateAdminKey(hash, "rf-admin-key"))
			assert.Error(t, auth.ValidateAdminKey(hash, "other-key"))
			assert.Zero(t, ta.connects)
		})
	}
}

func TestHashKeyCommand_EmptyKey(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := ta.run(t, "\n", "hash-key")
	assert.EqualError(t, err, "key must not be empty")
}

func TestRootCommand_InvalidStage(t *testing.T) {
	ta := newTestApp(t)
	root := ta.rootCommand()
	root.SetArgs([]string{"--stage", "staging", "hash-key", "k"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	assert.EqualError(t, err, `invalid stage "staging"`)
}

func TestRollupCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want time.Time
	}{
		{name: "defaults to yesterday", args: []string{"rollup"}, want: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)},
		{name: "explicit date", args: []string{"rollup", "--date", "2025-02-28"}, want: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.metrics.EXPECT().RollupDay(gomock.Any(), tt.want).Return(&business.DailyRollup{
				Date: tt.want,
				Values: []business.MetricValue{
					{Metric: "orders", Currency: "ALL", Value: 7},
					{Metric: "revenue", Currency: "USD", Value: 12500},
				},
			}, nil)

			out, _, err := ta.run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, "rolled up "+tt.want.Format(time.DateOnly))
			assert.Contains(t, out, "revenue")
			assert.Equal(t, 1, ta.connects)
		})
	}
}

func TestRollupCommand_Errors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		ta := newTestApp(t)

		_, _, err := ta.run(t, "", "rollup", "--date", "13/03/2025")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--date must be YYYY-MM-DD")
		assert.Zero(t, ta.connects)
	})

	t.Run("service failure", func(t *testing.T) {
		ta := newTestApp(t)
		ta.metrics.EXPECT().RollupDay(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, _, err := ta.run(t, "", "rollup")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rollup 2025-03-13")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRenderCommand_Single(t *testing.T) {
	ta := newTestApp(t)
	ta.metrics.EXPECT().RenderChart(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p params.ChartParams) (*business.RenderedChart, error) {
			assert.Equal(t, "orders", p.Metric)
			assert.Equal(t, 7, p.Days)
			assert.Equal(t, 400.0, p.Dimensions.Width)
			rc := rendered("orders", "Orders", []float64{3, 5, 4}, p.Dimensions)
			return &rc, nil
		})

	out, errOut, err := ta.run(t, "", "render", "--metric", "orders", "--days", "7", "--width", "400")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "<title>Orders</title>")
	assert.Contains(t, errOut, "orders: total 12")
}

func TestRenderCommand_Compare(t *testing.T) {
	ta := newTestApp(t)
	ta.metrics.EXPECT().CompareCharts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p params.CompareChartParams) ([]business.RenderedChart, error) {
			assert.Equal(t, []string{"revenue", "orders"}, p.Metrics)
			assert.Equal(t, "EUR", p.Currency)
			return []business.RenderedChart{
				rendered("revenue", "Revenue", []float64{10, 20}, p.Dimensions),
				rendered("orders", "Orders", []float64{1, 2}, p.Dimensions),
			}, nil
		})

	path := filepath.Join(t.TempDir(), "compare.svg")
	_, errOut, err := ta.run(t, "", "render", "-m", "revenue", "-m", "orders", "--currency", "EUR", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Revenue vs Orders</title>")
	assert.Contains(t, string(data), chart.SeriesColors[0])
	assert.Contains(t, string(data), chart.SeriesColors[1])
}

func TestRenderCommand_RequiresMetric(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := ta.run(t, "", "render")
	assert.EqualError(t, err, "at least one --metric is required")
	assert.Zero(t, ta.connects)
}

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantFrom time.Time
		wantTo   time.Time
		wantFile string
	}{
		{
			name:     "explicit range",
			args:     []string{"export", "--from", "2025-03-01", "--to", "2025-03-07"},
			wantFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
			wantFile: "orders-2025-03-01-2025-03-07.xlsx",
		},
		{
			name:     "last 30 days",
			args:     []string{"export"},
			wantFrom: time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			wantFile: "orders-2025-02-13-2025-03-14.xlsx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			ta := newTestApp(t)
			ta.export.EXPECT().ExportOrders(gomock.Any(), params.ExportOrdersParams{
				From: tt.wantFrom,
				To:   tt.wantTo,
			}).Return([]byte("xlsx"), nil)

			_, _, err := ta.run(t, "", tt.args...)
			require.NoError(t, err)

			data, err := os.ReadFile(filepath.Join(dir, tt.wantFile))
			require.NoError(t, err)
			assert.Equal(t, "xlsx", string(data))
		})
	}
}

func TestExportCommand_BadDate(t *testing.T) {
	ta := newTestApp(t)

	_, _, err := ta.run(t, "", "export", "--from", "March")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--from must be YYYY-MM-DD")
	assert.Zero(t, ta.connects)
}

func TestSeedCommand_InvalidCatalog(t *testing.T) {
	ta := newTestApp(t)
	ta.catalog = []byte("products: [")

	_, _, err := ta.run(t, "", "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
	assert.Zero(t, ta.connects)
}

func TestMigrateCommand(t *testing.T) {
	ta := newTestApp(t)
	ta.migrator = func(ctx context.Context) ([]string, error) {
		return []string{"0001_init", "0002_daily_metrics"}, nil
	}

	out, _, err := ta.run(t, "", "migrate")
	require.NoError(t, err)
	assert.Equal(t, "applied 0001_init\napplied 0002_daily_metrics\n", out)
}
