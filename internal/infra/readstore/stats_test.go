//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"compute-market/internal/infra"
	"compute-market/internal/infra/readstore"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	readstoremock "compute-market/tests/mock/readstore"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsReadStore_Snapshot(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	t.Run("success: aggregates decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockStatsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewStatsReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetMarketStats(ctx, mockDB, pgconv.TimeToPgtype(since)).Return(sqlc.GetMarketStatsRow{
			SupplyTotal:           10,
			SupplyAvailable:       4,
			SupplyRecent:          2,
			SupplyAveragePrice:    pgconv.NumericFromDecimal(decimal.RequireFromString("0.75")),
			DemandTotal:           6,
			DemandActive:          3,
			DemandRecent:          1,
			DemandAverageMaxPrice: pgconv.NumericFromDecimal(decimal.RequireFromString("1.10")),
			MatchTotal:            5,
			MatchRecent:           2,
			AverageMatchSeconds:   42.5,
			TransactionConfirmed:  3,
			TransactionVolume:     pgconv.NumericFromDecimal(decimal.RequireFromString("180")),
		}, nil)

		snap, err := store.Snapshot(ctx, since)
		require.NoError(t, err)
		assert.Equal(t, int64(4), snap.SupplyAvailable)
		assert.Equal(t, int64(3), snap.DemandActive)
		assert.Equal(t, 42.5, snap.AverageMatchSeconds)
		assert.True(t, decimal.RequireFromString("0.75").Equal(snap.SupplyAveragePrice))
		assert.True(t, decimal.RequireFromString("180").Equal(snap.TransactionVolume))
	})

	t.Run("success: empty market yields zero averages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockStatsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewStatsReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetMarketStats(ctx, mockDB, gomock.Any()).Return(sqlc.GetMarketStatsRow{
			SupplyAveragePrice:    pgtype.Numeric{},
			DemandAverageMaxPrice: pgtype.Numeric{},
			TransactionVolume:     pgtype.Numeric{},
		}, nil)

		snap, err := store.Snapshot(ctx, since)
		require.NoError(t, err)
		assert.True(t, snap.SupplyAveragePrice.IsZero())
		assert.True(t, snap.TransactionVolume.IsZero())
	})

	t.Run("error: query failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockStatsReadQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewStatsReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetMarketStats(ctx, mockDB, gomock.Any()).Return(sqlc.GetMarketStatsRow{}, errors.New("connection reset"))

		_, err := store.Snapshot(ctx, since)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
