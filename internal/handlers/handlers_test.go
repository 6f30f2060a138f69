package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reachfood2024-code/reachfood-sub000/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type testEnv struct {
	catalog       *mocks.MockCatalogService
	orders        *mocks.MockOrderService
	subscriptions *mocks.MockSubscriptionService
	tracking      *mocks.MockTrackingService
	metrics       *mocks.MockMetricsService
	export        *mocks.MockExportService
	common        *CommonServices
	router        *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		catalog:       mocks.NewMockCatalogService(ctrl),
		orders:        mocks.NewMockOrderService(ctrl),
		subscriptions: mocks.NewMockSubscriptionService(ctrl),
		tracking:      mocks.NewMockTrackingService(ctrl),
		metrics:       mocks.NewMockMetricsService(ctrl),
		export:        mocks.NewMockExportService(ctrl),
		router:        gin.New(),
	}
	env.common = &CommonServices{
		Catalog:       env.catalog,
		Orders:        env.orders,
		Subscriptions: env.subscriptions,
		Tracking:      env.tracking,
		Metrics:       env.metrics,
		Export:        env.export,
	}
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}
