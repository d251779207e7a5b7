//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/repository"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/tests/common/builder"
	repositorymock "compute-market/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMatchRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: match created"},
		{
			name:          "error: offer row vanished",
			dbErr:         &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name:          "error: database failure",
			dbErr:         errors.New("connection reset"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMatchRepository(mockQueries, mockDB)

			m := builder.NewMatchBuilder().BuildDomain()
			mockQueries.EXPECT().CreateMatch(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateMatchParams) (sqlc.Matches, error) {
					assert.Equal(t, m.ID, arg.ID)
					assert.Equal(t, m.SupplyOfferID, arg.SupplyOfferID)
					assert.Equal(t, m.DemandRequestID, arg.DemandRequestID)
					return sqlc.Matches{ID: arg.ID}, tc.dbErr
				})

			actualError := repo.Create(ctx, mockDB, m)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestMatchRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	hash := "0x" + "ab" + "00000000000000000000000000000000000000000000000000000000000000"

	t.Run("success: tx hash and status survive decoding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMatchRepository(mockQueries, mockDB)

		b := builder.NewMatchBuilder().WithStatus(market.MatchActive).WithTxHash(hash)
		mockQueries.EXPECT().GetMatchForUpdate(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)

		m, err := repo.FindForUpdate(ctx, mockDB, b.ID)
		require.NoError(t, err)
		assert.Equal(t, market.MatchActive, m.Status)
		assert.Equal(t, hash, m.TxHash)
		assert.True(t, b.AgreedPrice.Equal(m.AgreedPrice))
	})

	t.Run("error: match does not exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMatchRepository(mockQueries, mockDB)

		b := builder.NewMatchBuilder()
		mockQueries.EXPECT().GetMatchForUpdate(ctx, mockDB, b.ID).Return(sqlc.Matches{}, pgx.ErrNoRows)

		m, err := repo.FindForUpdate(ctx, mockDB, b.ID)
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMatchRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockMatchWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewMatchRepository(mockQueries, mockDB)

	m := builder.NewMatchBuilder().WithStatus(market.MatchCompleted).BuildDomain()

	mockQueries.EXPECT().UpdateMatch(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateMatchParams) error {
			assert.Equal(t, "completed", arg.Status)
			assert.False(t, arg.TxHash.Valid)
			return nil
		})
	require.NoError(t, repo.Update(ctx, mockDB, m))

	fk := &pgconn.PgError{Code: "23503", Message: "update or delete on table \"matches\" violates foreign key constraint"}
	mockQueries.EXPECT().DeleteMatch(ctx, mockDB, m.ID).Return(int64(0), fk)
	err := repo.Delete(ctx, mockDB, m.ID)
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))

	mockQueries.EXPECT().DeleteMatch(ctx, mockDB, m.ID).Return(int64(1), nil)
	assert.NoError(t, repo.Delete(ctx, mockDB, m.ID))
}
