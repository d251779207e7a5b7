//go:build unit

package chain_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra/chain"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usdcContract = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"
	payer        = "0xde709f2102306220921060314715629080e2fb77"
	payee        = "0x52908400098527886E0F7030069857D2E4169EE7"
	txHash       = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
)

type stubReceiptReader struct {
	receipt *types.Receipt
	err     error
}

func (s *stubReceiptReader) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return s.receipt, s.err
}

type stubCaller struct {
	out  []byte
	err  error
	msgs []ethereum.CallMsg
}

func (s *stubCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	s.msgs = append(s.msgs, msg)
	return s.out, s.err
}

func transferLog(contract, to string, baseUnits int64) *types.Log {
	return transferLogFrom(contract, payer, to, baseUnits)
}

func transferLogFrom(contract, from, to string, baseUnits int64) *types.Log {
	return &types.Log{
		Address: common.HexToAddress(contract),
		Topics: []common.Hash{
			chain.TransferTopic,
			common.BytesToHash(common.HexToAddress(from).Bytes()),
			common.BytesToHash(common.HexToAddress(to).Bytes()),
		},
		Data: common.LeftPadBytes(big.NewInt(baseUnits).Bytes(), 32),
	}
}

func TestReceiptVerifier_Verify(t *testing.T) {
	exp := shared.SettlementExpectation{
		TxHash: txHash,
		Payer:  payer,
		Payee:  payee,
		Amount: decimal.RequireFromString("12.5"),
	}
	errRPC := errors.New("rpc unavailable")

	testCases := []struct {
		name      string
		reader    *stubReceiptReader
		expected  market.TransactionStatus
		expectErr bool
	}{
		{
			name:     "pending: receipt not found",
			reader:   &stubReceiptReader{err: ethereum.NotFound},
			expected: market.TxPending,
		},
		{
			name: "failed: transaction reverted",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusFailed,
			}},
			expected: market.TxFailed,
		},
		{
			name: "confirmed: exact amount to payee",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLog(usdcContract, payee, 12_500_000)},
			}},
			expected: market.TxConfirmed,
		},
		{
			name: "confirmed: overpayment",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLog(usdcContract, payee, 20_000_000)},
			}},
			expected: market.TxConfirmed,
		},
		{
			name: "failed: underpayment",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLog(usdcContract, payee, 12_499_999)},
			}},
			expected: market.TxFailed,
		},
		{
			name: "failed: transfer to someone else",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLog(usdcContract, payer, 12_500_000)},
			}},
			expected: market.TxFailed,
		},
		{
			name: "failed: transfer to payee from another sender",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLogFrom(usdcContract, "0x00000000000000000000000000000000000000aa", payee, 12_500_000)},
			}},
			expected: market.TxFailed,
		},
		{
			name: "confirmed: payer's transfer among unrelated logs",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs: []*types.Log{
					transferLogFrom(usdcContract, "0x00000000000000000000000000000000000000aa", payee, 12_500_000),
					transferLog(usdcContract, payee, 12_500_000),
				},
			}},
			expected: market.TxConfirmed,
		},
		{
			name: "failed: transfer of another token",
			reader: &stubReceiptReader{receipt: &types.Receipt{
				Status: types.ReceiptStatusSuccessful,
				Logs:   []*types.Log{transferLog("0x0000000000000000000000000000000000000001", payee, 12_500_000)},
			}},
			expected: market.TxFailed,
		},
		{
			name:      "error: rpc failure",
			reader:    &stubReceiptReader{err: errRPC},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verifier := chain.NewReceiptVerifier(tc.reader, usdcContract, 6, 0)

			status, err := verifier.Verify(context.Background(), exp)

			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errRPC)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestTrustingVerifier_Verify(t *testing.T) {
	status, err := chain.NewTrustingVerifier().Verify(context.Background(), shared.SettlementExpectation{TxHash: txHash})

	require.NoError(t, err)
	assert.Equal(t, market.TxConfirmed, status)
}

func TestUSDC_Balance(t *testing.T) {
	t.Run("success: converts base units", func(t *testing.T) {
		caller := &stubCaller{out: common.LeftPadBytes(big.NewInt(2_500_000).Bytes(), 32)}
		usdc := chain.NewUSDC(caller, usdcContract, 6, 0)

		balance, err := usdc.USDCBalance(context.Background(), payee)

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("2.5").Equal(balance), "got %s", balance)
		require.Len(t, caller.msgs, 1)
		assert.Equal(t, common.HexToAddress(usdcContract), *caller.msgs[0].To)
		assert.Len(t, caller.msgs[0].Data, 4+32)
		assert.Equal(t, common.HexToAddress(usdcContract).Hex(), usdc.ContractAddress())
	})

	t.Run("error: call fails", func(t *testing.T) {
		errCall := errors.New("execution reverted")
		usdc := chain.NewUSDC(&stubCaller{err: errCall}, usdcContract, 6, 0)

		_, err := usdc.USDCBalance(context.Background(), payee)

		assert.ErrorIs(t, err, errCall)
	})
}

func TestUnavailableBalanceReader(t *testing.T) {
	reader := chain.NewUnavailableBalanceReader(usdcContract)

	_, err := reader.USDCBalance(context.Background(), payee)

	assert.ErrorIs(t, err, errs.ErrChainUnavailable)
	assert.Equal(t, usdcContract, reader.ContractAddress())
}
