package repository

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/repository/converter"
	sqlc "compute-market/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TransactionWriteQueries interface {
	CreateTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTransactionParams) (sqlc.Transactions, error)
	UpdateTransactionStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTransactionStatusParams) error
}

type TransactionRepository struct {
	queries TransactionWriteQueries
	db      sqlc.DBTX
}

func NewTransactionRepository(queries TransactionWriteQueries, db sqlc.DBTX) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with KindDuplicateKey when the hash is already recorded.
func (r *TransactionRepository) Create(ctx context.Context, tx sqlc.DBTX, t *market.Transaction) error {
	if _, err := r.queries.CreateTransaction(ctx, tx, converter.TransactionToCreateParams(t)); err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status market.TransactionStatus) error {
	params := sqlc.UpdateTransactionStatusParams{ID: id, Status: status.String()}
	if err := r.queries.UpdateTransactionStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update transaction status", err)
	}
	return nil
}
