//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"compute-market/internal/handler/api"
	"compute-market/internal/usecase/queries"
	"compute-market/tests/common/httptest"
	queriesmock "compute-market/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsHandler_Get(t *testing.T) {
	t.Run("success: renders the aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockStatsQueries(ctrl)
		router := newTestEngine()
		router.GET("/api/stats", api.NewStatsHandler(q).Get)

		q.EXPECT().Get(gomock.Any()).Return(&queries.MarketStats{
			Supply:       queries.SupplyStats{Total: 3, Available: 2, AveragePrice: decimal.RequireFromString("0.75")},
			Demand:       queries.DemandStats{Total: 4, Active: 1},
			Matches:      queries.MatchStats{Total: 1},
			Transactions: queries.TransactionStats{Confirmed: 1, Volume: decimal.RequireFromString("12")},
			Marketplace:  queries.MarketplaceStats{UtilizationRate: 50, NetworkHealth: queries.NetworkHealthy},
			GeneratedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/stats", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		marketplace, ok := body["marketplace"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "healthy", marketplace["networkHealth"])
		assert.InDelta(t, 50.0, marketplace["utilizationRate"], 1e-9)
		supply, ok := body["supply"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 2.0, supply["available"], 1e-9)
	})

	t.Run("error: 500 when storage fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockStatsQueries(ctrl)
		router := newTestEngine()
		router.GET("/api/stats", api.NewStatsHandler(q).Get)

		q.EXPECT().Get(gomock.Any()).Return(nil, errors.New("timeout"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/stats", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
