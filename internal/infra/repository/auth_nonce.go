package repository

import (
	"context"

	"compute-market/internal/domain/auth"
	"compute-market/internal/infra"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
)

type AuthNonceQueries interface {
	UpsertAuthNonce(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAuthNonceParams) error
	ConsumeAuthNonce(ctx context.Context, db sqlc.DBTX, walletAddress string) (sqlc.AuthNonces, error)
}

type AuthNonceRepository struct {
	queries AuthNonceQueries
	db      sqlc.DBTX
}

func NewAuthNonceRepository(queries AuthNonceQueries, db sqlc.DBTX) *AuthNonceRepository {
	return &AuthNonceRepository{
		queries: queries,
		db:      db,
	}
}

// Save replaces any outstanding nonce for the same wallet.
func (r *AuthNonceRepository) Save(ctx context.Context, tx sqlc.DBTX, nonce auth.Nonce) error {
	params := sqlc.UpsertAuthNonceParams{
		WalletAddress: nonce.WalletAddress(),
		Nonce:         nonce.Value(),
		ExpiresAt:     pgconv.TimeToPgtype(nonce.ExpiresAt()),
	}
	if err := r.queries.UpsertAuthNonce(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to save auth nonce", err)
	}
	return nil
}

func (r *AuthNonceRepository) Consume(ctx context.Context, tx sqlc.DBTX, wallet string) (auth.Nonce, error) {
	row, err := r.queries.ConsumeAuthNonce(ctx, tx, wallet)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return auth.Nonce{}, infra.WrapRepoErr("auth nonce not found", err, infra.KindNotFound)
		}
		return auth.Nonce{}, infra.WrapRepoErr("failed to consume auth nonce", err)
	}
	return auth.ReconstructNonce(row.WalletAddress, row.Nonce, pgconv.TimeFromPgtype(row.ExpiresAt)), nil
}
