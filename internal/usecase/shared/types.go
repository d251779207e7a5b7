package shared

import (
	"context"

	"compute-market/internal/domain/market"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementExpectation describes the transfer a match payment must contain.
type SettlementExpectation struct {
	TxHash string
	Payer  string
	Payee  string
	Amount decimal.Decimal
}

// PendingSettlement is a recorded transaction still awaiting confirmation.
type PendingSettlement struct {
	TransactionID uuid.UUID
	MatchID       uuid.UUID
	Expectation   SettlementExpectation
}

type SettlementVerifier interface {
	Verify(ctx context.Context, exp SettlementExpectation) (market.TransactionStatus, error)
}
