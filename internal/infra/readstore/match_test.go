//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/readstore"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/tests/common/builder"
	readstoremock "compute-market/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func matchRowParts(t *testing.T) (sqlc.Matches, sqlc.SupplyOffers, sqlc.DemandRequests) {
	t.Helper()
	sb := builder.NewSupplyOfferBuilder().WithAvailable(false)
	db := builder.NewDemandRequestBuilder().WithStatus(market.DemandMatched)
	offer := sb.BuildRecord()
	demand := db.BuildRecord()
	m := builder.NewMatchBuilder().Between(&offer, &demand).WithStatus(market.MatchActive)
	return m.BuildRow(), sb.BuildRow(), db.BuildRow()
}

func TestMatchReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: match joined with both sides"},
		{name: "error: match not found", dbErr: pgx.ErrNoRows, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockMatchReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewMatchReadStore(mockQueries, mockDB)

			m, s, d := matchRowParts(t)
			row := sqlc.GetMatchViewByIDRow{Matches: m, SupplyOffers: s, DemandRequests: d}
			if tc.dbErr != nil {
				row = sqlc.GetMatchViewByIDRow{}
			}
			mockQueries.EXPECT().GetMatchViewByID(ctx, mockDB, m.ID).Return(row, tc.dbErr)

			view, err := store.FindByID(ctx, m.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, m.ID, view.ID)
			assert.Equal(t, "active", view.Status)
			assert.Equal(t, s.ID, view.SupplyOffer.ID)
			assert.False(t, view.SupplyOffer.Available)
			assert.Equal(t, d.ID, view.DemandRequest.ID)
			assert.Equal(t, "matched", view.DemandRequest.Status)
		})
	}
}

func TestMatchReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockMatchReadQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewMatchReadStore(mockQueries, mockDB)

	m, s, d := matchRowParts(t)
	badMatch := m
	badMatch.Status = "lost"

	mockQueries.EXPECT().ListMatchViews(ctx, mockDB).Return([]sqlc.ListMatchViewsRow{
		{Matches: m, SupplyOffers: s, DemandRequests: d},
	}, nil)
	views, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].AgreedPrice.Equal(views[0].SupplyOffer.PricePerHour))

	mockQueries.EXPECT().ListMatchViews(ctx, mockDB).Return([]sqlc.ListMatchViewsRow{
		{Matches: badMatch, SupplyOffers: s, DemandRequests: d},
	}, nil)
	_, err = store.List(ctx)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
