package repository

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/repository/converter"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MatchWriteQueries interface {
	CreateMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchParams) (sqlc.Matches, error)
	GetMatchForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Matches, error)
	UpdateMatch(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMatchParams) error
	DeleteMatch(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type MatchRepository struct {
	queries MatchWriteQueries
	db      sqlc.DBTX
}

func NewMatchRepository(queries MatchWriteQueries, db sqlc.DBTX) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MatchRepository) Create(ctx context.Context, tx sqlc.DBTX, m *market.Match) error {
	if _, err := r.queries.CreateMatch(ctx, tx, converter.MatchToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create match", err)
	}
	return nil
}

func (r *MatchRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.Match, error) {
	row, err := r.queries.GetMatchForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock match", err)
	}
	m, err := converter.MatchFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match", err, infra.KindDBFailure)
	}
	return m, nil
}

func (r *MatchRepository) Update(ctx context.Context, tx sqlc.DBTX, m *market.Match) error {
	if err := r.queries.UpdateMatch(ctx, tx, converter.MatchToUpdateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to update match", err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteMatch(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete match", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("match not found", nil, infra.KindNotFound)
	}
	return nil
}
