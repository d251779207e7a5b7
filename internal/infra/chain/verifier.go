package chain

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"compute-market/internal/domain/market"
	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
)

type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ReceiptVerifier decides a settlement from its transaction receipt. A
// missing receipt is pending; a reverted one is failed. A successful receipt
// is confirmed only when it carries a USDC Transfer from the payer to the
// payee of at least the expected amount.
type ReceiptVerifier struct {
	reader   ReceiptReader
	contract common.Address
	decimals int32
	timeout  time.Duration
}

func NewReceiptVerifier(reader ReceiptReader, contract string, decimals int32, timeout time.Duration) *ReceiptVerifier {
	return &ReceiptVerifier{
		reader:   reader,
		contract: common.HexToAddress(contract),
		decimals: decimals,
		timeout:  timeout,
	}
}

func (v *ReceiptVerifier) Verify(ctx context.Context, exp shared.SettlementExpectation) (market.TransactionStatus, error) {
	callCtx, cancel := withTimeout(ctx, v.timeout)
	defer cancel()

	receipt, err := v.reader.TransactionReceipt(callCtx, common.HexToHash(exp.TxHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return market.TxPending, nil
		}
		return "", errs.Wrapf(err, "failed to fetch receipt for %s", exp.TxHash)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return market.TxFailed, nil
	}

	payer := common.HexToAddress(exp.Payer)
	payee := common.HexToAddress(exp.Payee)
	want := settlement.ToBaseUnits(exp.Amount, v.decimals)
	for _, log := range receipt.Logs {
		if v.paysAtLeast(log, payer, payee, want) {
			return market.TxConfirmed, nil
		}
	}

	slog.Warn("settlement receipt has no matching transfer",
		"tx_hash", exp.TxHash,
		"payer", payer.Hex(),
		"payee", payee.Hex(),
		"expected_base_units", want.String())
	return market.TxFailed, nil
}

func (v *ReceiptVerifier) paysAtLeast(log *types.Log, payer, payee common.Address, want *big.Int) bool {
	if log.Address != v.contract || len(log.Topics) != 3 || log.Topics[0] != TransferTopic {
		return false
	}
	if common.BytesToAddress(log.Topics[1].Bytes()) != payer || common.BytesToAddress(log.Topics[2].Bytes()) != payee {
		return false
	}
	return new(big.Int).SetBytes(log.Data).Cmp(want) >= 0
}

// TrustingVerifier confirms every settlement. It is used when no RPC
// endpoint is configured.
type TrustingVerifier struct{}

func NewTrustingVerifier() *TrustingVerifier {
	return &TrustingVerifier{}
}

func (TrustingVerifier) Verify(_ context.Context, _ shared.SettlementExpectation) (market.TransactionStatus, error) {
	return market.TxConfirmed, nil
}

// UnavailableBalanceReader reports that balances cannot be read.
type UnavailableBalanceReader struct {
	contract string
}

func NewUnavailableBalanceReader(contract string) *UnavailableBalanceReader {
	return &UnavailableBalanceReader{contract: contract}
}

func (r *UnavailableBalanceReader) ContractAddress() string {
	return r.contract
}

func (r *UnavailableBalanceReader) USDCBalance(context.Context, string) (decimal.Decimal, error) {
	return decimal.Zero, errs.ErrChainUnavailable
}
