package readstore

import (
	"context"

	"compute-market/internal/infra"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchReadQueries interface {
	GetMatchViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetMatchViewByIDRow, error)
	ListMatchViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListMatchViewsRow, error)
}

type MatchReadStore struct {
	queries MatchReadQueries
	db      sqlc.DBTX
}

func NewMatchReadStore(queries MatchReadQueries, db sqlc.DBTX) *MatchReadStore {
	return &MatchReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MatchView, error) {
	row, err := r.queries.GetMatchViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get match view by id", err)
	}
	view, err := toMatchView(row.Matches, row.SupplyOffers, row.DemandRequests)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match view", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *MatchReadStore) List(ctx context.Context) ([]*queries.MatchView, error) {
	rows, err := r.queries.ListMatchViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list match views", err)
	}
	views := make([]*queries.MatchView, 0, len(rows))
	for _, row := range rows {
		view, err := toMatchView(row.Matches, row.SupplyOffers, row.DemandRequests)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode match view", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}
