//go:build unit

package commands_test

import (
	"context"
	"testing"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/commands"
	"compute-market/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDemandRequestCommands_Create(t *testing.T) {
	ctx := context.Background()
	h := newUOWHarness(t)
	uc := commands.NewDemandRequestCommands(h.uow, h.clock)

	h.demands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Create(ctx, market.NewDemandRequestParams{
		WalletAddress:   builder.BuyerWallet,
		Resources:       market.Resources{CPUCores: 4, RAMGB: 8, StorageGB: 100},
		MaxPricePerHour: decimal.RequireFromString("1.00"),
		DurationHours:   24,
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestDemandRequestCommands_CreateRejectsDuration(t *testing.T) {
	h := newUOWHarness(t)
	uc := commands.NewDemandRequestCommands(h.uow, h.clock)

	_, err := uc.Create(context.Background(), market.NewDemandRequestParams{
		WalletAddress:   builder.BuyerWallet,
		Resources:       market.Resources{CPUCores: 4, RAMGB: 8, StorageGB: 100},
		MaxPricePerHour: decimal.RequireFromString("1.00"),
		DurationHours:   0,
	})
	assert.True(t, errs.Is(err, market.ErrInvalidDuration))
}

func TestDemandRequestCommands_Update(t *testing.T) {
	ctx := context.Background()
	cancelled := market.DemandCancelled
	bogus := market.DemandStatus("paused")

	testCases := []struct {
		name        string
		wallet      string
		update      market.DemandRequestUpdate
		expectWrite bool
		expectedErr error
	}{
		{
			name:        "success: owner cancels",
			wallet:      builder.BuyerWallet,
			update:      market.DemandRequestUpdate{Status: &cancelled},
			expectWrite: true,
		},
		{
			name:        "error: unknown status",
			wallet:      builder.BuyerWallet,
			update:      market.DemandRequestUpdate{Status: &bogus},
			expectedErr: market.ErrInvalidDemandStatus,
		},
		{
			name:        "error: stranger",
			wallet:      builder.SupplierWallet,
			update:      market.DemandRequestUpdate{Status: &cancelled},
			expectedErr: errs.ErrNotOwner,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newUOWHarness(t)
			demand := builder.NewDemandRequestBuilder().BuildRecord()
			h.demands.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), demand.ID).Return(&demand, nil)
			if tc.expectWrite {
				h.demands.EXPECT().Update(gomock.Any(), gomock.Any(), &demand).Return(nil)
			}
			uc := commands.NewDemandRequestCommands(h.uow, h.clock)

			err := uc.Update(ctx, demand.ID, tc.update, tc.wallet)

			if tc.expectedErr != nil {
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, market.DemandCancelled, demand.Status)
		})
	}
}

func TestDemandRequestCommands_Delete(t *testing.T) {
	ctx := context.Background()
	h := newUOWHarness(t)
	demand := builder.NewDemandRequestBuilder().BuildRecord()
	uc := commands.NewDemandRequestCommands(h.uow, h.clock)

	h.demands.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), demand.ID).Return(&demand, nil)
	h.demands.EXPECT().Delete(gomock.Any(), gomock.Any(), demand.ID).
		Return(infra.WrapRepoErr("failed to delete demand request", nil, infra.KindForeignKeyViolated))

	err := uc.Delete(ctx, demand.ID, builder.BuyerWallet)
	assert.True(t, errs.Is(err, errs.ErrDemandRequestInUse))
}
