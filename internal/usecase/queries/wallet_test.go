//go:build unit

package queries_test

import (
	"context"
	"testing"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/queries"
	"compute-market/tests/common/builder"
	queriesmock "compute-market/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const usdcContract = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

func TestWalletQueries_USDCBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("success: balance with token metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBalanceReader(ctrl)
		q := queries.NewWalletQueries(reader)

		reader.EXPECT().USDCBalance(ctx, builder.SupplierWallet).Return(decimal.RequireFromString("1500.25"), nil)
		reader.EXPECT().ContractAddress().Return(usdcContract)

		view, err := q.USDCBalance(ctx, builder.SupplierWallet)
		require.NoError(t, err)
		assert.Equal(t, builder.SupplierWallet, view.WalletAddress)
		assert.Equal(t, "USDC", view.Token)
		assert.Equal(t, usdcContract, view.Contract)
		assert.Equal(t, "1500.25", view.Balance.String())
	})

	t.Run("error: malformed wallet never reaches the chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBalanceReader(ctrl)
		q := queries.NewWalletQueries(reader)

		_, err := q.USDCBalance(ctx, "0x1234")
		assert.ErrorIs(t, err, settlement.ErrInvalidWalletAddress)
	})

	t.Run("error: chain not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := queriesmock.NewMockBalanceReader(ctrl)
		q := queries.NewWalletQueries(reader)

		reader.EXPECT().USDCBalance(ctx, builder.BuyerWallet).Return(decimal.Zero, errs.ErrChainUnavailable)

		_, err := q.USDCBalance(ctx, builder.BuyerWallet)
		assert.ErrorIs(t, err, errs.ErrChainUnavailable)
	})
}
