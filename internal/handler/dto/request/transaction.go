package request

import (
	"compute-market/internal/domain/market"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	MatchID uuid.UUID       `json:"matchId" binding:"required"`
	TxHash  string          `json:"txHash" binding:"required,startswith=0x,len=66,hexadecimal"`
	Amount  decimal.Decimal `json:"amount"`
	Token   string          `json:"token,omitempty" binding:"omitempty,max=16"`
	Status  string          `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed failed"`
}

func (r CreateTransactionRequest) ToParams() market.NewTransactionParams {
	return market.NewTransactionParams{
		MatchID: r.MatchID,
		TxHash:  r.TxHash,
		Amount:  r.Amount,
		Token:   r.Token,
		Status:  market.TransactionStatus(r.Status),
	}
}
