package request

import (
	"compute-market/internal/domain/market"
	"compute-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	SupplyOfferID   uuid.UUID `json:"supplyOfferId" binding:"required"`
	DemandRequestID uuid.UUID `json:"demandRequestId" binding:"required"`
}

type UpdateMatchRequest struct {
	TxHash *string `json:"txHash,omitempty" binding:"omitempty,startswith=0x,len=66,hexadecimal"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=pending active completed cancelled"`
}

func (r UpdateMatchRequest) ToCommand() (commands.UpdateMatchInput, error) {
	in := commands.UpdateMatchInput{TxHash: r.TxHash}
	if r.Status != nil {
		st, err := market.ParseMatchStatus(*r.Status)
		if err != nil {
			return commands.UpdateMatchInput{}, err
		}
		in.Status = &st
	}
	return in, nil
}
