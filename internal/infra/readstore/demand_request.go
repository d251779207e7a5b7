package readstore

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/repository/converter"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type DemandRequestReadQueries interface {
	GetDemandRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DemandRequests, error)
	ListOpenDemandRequests(ctx context.Context, db sqlc.DBTX) ([]sqlc.DemandRequests, error)
}

type DemandRequestReadStore struct {
	queries DemandRequestReadQueries
	db      sqlc.DBTX
}

func NewDemandRequestReadStore(queries DemandRequestReadQueries, db sqlc.DBTX) *DemandRequestReadStore {
	return &DemandRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DemandRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DemandRequestView, error) {
	demand, err := r.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return demandRequestViewFromDomain(demand), nil
}

func (r *DemandRequestReadStore) FindRecordByID(ctx context.Context, id uuid.UUID) (*market.DemandRequest, error) {
	row, err := r.queries.GetDemandRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("demand request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get demand request by id", err)
	}
	demand, err := converter.DemandRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode demand request", err, infra.KindDBFailure)
	}
	return demand, nil
}

func (r *DemandRequestReadStore) ListOpen(ctx context.Context) ([]*queries.DemandRequestView, error) {
	rows, err := r.queries.ListOpenDemandRequests(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list demand requests", err)
	}
	views := make([]*queries.DemandRequestView, 0, len(rows))
	for _, row := range rows {
		view, err := toDemandRequestView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode demand request", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}
