package shared

import (
	"context"

	"compute-market/internal/domain/auth"
	"compute-market/internal/domain/market"
	sqlc "compute-market/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	SupplyOffers() SupplyOfferRepository
	DemandRequests() DemandRequestRepository
	Matches() MatchRepository
	Transactions() TransactionRepository
	AuthNonces() AuthNonceRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write use cases need before deciding what to write.
type CommandReads interface {
	DemandRequestByID(ctx context.Context, id uuid.UUID) (*market.DemandRequest, error)
	AvailableSupplyOffers(ctx context.Context) ([]market.SupplyOffer, error)
	TransactionByHash(ctx context.Context, txHash string) (*market.Transaction, error)
	PendingSettlements(ctx context.Context, limit int32) ([]PendingSettlement, error)
}

// FindForUpdate variants lock the row until the surrounding transaction ends.
type SupplyOfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, offer *market.SupplyOffer) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.SupplyOffer, error)
	Update(ctx context.Context, tx sqlc.DBTX, offer *market.SupplyOffer) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type DemandRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, demand *market.DemandRequest) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.DemandRequest, error)
	Update(ctx context.Context, tx sqlc.DBTX, demand *market.DemandRequest) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type MatchRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *market.Match) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.Match, error)
	Update(ctx context.Context, tx sqlc.DBTX, m *market.Match) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, t *market.Transaction) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status market.TransactionStatus) error
}

type AuthNonceRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, nonce auth.Nonce) error
	// Consume deletes and returns the outstanding nonce for wallet.
	Consume(ctx context.Context, tx sqlc.DBTX, wallet string) (auth.Nonce, error)
}
