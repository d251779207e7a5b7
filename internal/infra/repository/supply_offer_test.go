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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Supply Offer Tests
// =============================================================================

func TestSupplyOfferRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSupplyOfferWriteQueries, *market.SupplyOffer, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: supply offer created",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, offer *market.SupplyOffer, tx sqlc.DBTX) {
				mock.EXPECT().CreateSupplyOffer(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSupplyOfferParams) (sqlc.SupplyOffers, error) {
						assert.Equal(t, offer.ID, arg.ID)
						assert.Equal(t, offer.WalletAddress, arg.WalletAddress)
						assert.Equal(t, int32(offer.CPUCores), arg.CpuCores)
						return sqlc.SupplyOffers{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, offer *market.SupplyOffer, tx sqlc.DBTX) {
				mock.EXPECT().CreateSupplyOffer(ctx, tx, gomock.Any()).Return(sqlc.SupplyOffers{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: primary key collision",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, offer *market.SupplyOffer, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateSupplyOffer(ctx, tx, gomock.Any()).Return(sqlc.SupplyOffers{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSupplyOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSupplyOfferRepository(mockQueries, mockDB)

			offer, err := builder.NewSupplyOfferBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, offer, mockDB)

			actualError := repo.Create(ctx, mockDB, offer)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Supply Offer Tests
// =============================================================================

func TestSupplyOfferRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewSupplyOfferBuilder().WithGPU(2, "RTX 4090").WithPrice("1.25")

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockSupplyOfferWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row decoded into domain offer",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetSupplyOfferForUpdate(ctx, tx, b.ID).Return(b.BuildRow(), nil)
			},
		},
		{
			name: "error: offer does not exist",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetSupplyOfferForUpdate(ctx, tx, b.ID).Return(sqlc.SupplyOffers{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: lock failed",
			setupMock: func(mock *repositorymock.MockSupplyOfferWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().GetSupplyOfferForUpdate(ctx, tx, b.ID).Return(sqlc.SupplyOffers{}, errors.New("lock timeout"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSupplyOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSupplyOfferRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			offer, actualError := repo.FindForUpdate(ctx, mockDB, b.ID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, offer)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, b.ID, offer.ID)
			assert.Equal(t, "RTX 4090", offer.GPUType)
			assert.Equal(t, 2, offer.GPUCount)
			assert.Equal(t, "1.25", offer.PricePerHour.String())
			assert.True(t, offer.Available)
		})
	}
}

// =============================================================================
// Update / Delete Supply Offer Tests
// =============================================================================

func TestSupplyOfferRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSupplyOfferWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSupplyOfferRepository(mockQueries, mockDB)

	offer := builder.NewSupplyOfferBuilder().BuildRecord()
	offer.Available = false

	mockQueries.EXPECT().UpdateSupplyOffer(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateSupplyOfferParams) error {
			assert.Equal(t, offer.ID, arg.ID)
			assert.False(t, arg.Available)
			return nil
		})

	require.NoError(t, repo.Update(ctx, mockDB, &offer))
}

func TestSupplyOfferRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: offer removed", affected: 1},
		{name: "error: nothing to delete", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{
			name:          "error: offer referenced by a match",
			dbErr:         &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSupplyOfferWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSupplyOfferRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteSupplyOffer(ctx, mockDB, id).Return(tc.affected, tc.dbErr)

			actualError := repo.Delete(ctx, mockDB, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
