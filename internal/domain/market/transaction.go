package market

import (
	"strings"
	"time"

	"compute-market/internal/domain/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records an on-chain payment for a match.
type Transaction struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	TxHash    string
	Amount    decimal.Decimal
	Token     string
	Status    TransactionStatus
	CreatedAt time.Time
}

type NewTransactionParams struct {
	MatchID uuid.UUID
	TxHash  string
	Amount  decimal.Decimal
	Token   string
	Status  TransactionStatus
}

func NewTransaction(p NewTransactionParams, now time.Time) (*Transaction, error) {
	hash, err := settlement.NormalizeTxHash(p.TxHash)
	if err != nil {
		return nil, err
	}
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	token := strings.TrimSpace(p.Token)
	if token == "" {
		token = DefaultToken
	}
	status := p.Status
	if status == "" {
		status = TxPending
	}
	if _, err := ParseTransactionStatus(string(status)); err != nil {
		return nil, err
	}

	return &Transaction{
		ID:        uuid.New(),
		MatchID:   p.MatchID,
		TxHash:    hash,
		Amount:    p.Amount,
		Token:     token,
		Status:    status,
		CreatedAt: now,
	}, nil
}
