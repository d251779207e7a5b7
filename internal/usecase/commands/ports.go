package commands

import (
	"time"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"

	"github.com/google/uuid"
)

type CreateResult struct {
	ID uuid.UUID
}

// UpdateMatchInput carries the optional changes to a match; nil leaves a field as is.
type UpdateMatchInput struct {
	Status *market.MatchStatus
	TxHash *string
}

// TokenIssuer signs session tokens for authenticated wallets.
type TokenIssuer interface {
	GenerateToken(walletAddress string, now time.Time) (string, error)
	TokenDuration() time.Duration
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
