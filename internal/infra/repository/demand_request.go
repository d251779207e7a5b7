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

type DemandRequestWriteQueries interface {
	CreateDemandRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDemandRequestParams) (sqlc.DemandRequests, error)
	GetDemandRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DemandRequests, error)
	UpdateDemandRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDemandRequestParams) error
	DeleteDemandRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DemandRequestRepository struct {
	queries DemandRequestWriteQueries
	db      sqlc.DBTX
}

func NewDemandRequestRepository(queries DemandRequestWriteQueries, db sqlc.DBTX) *DemandRequestRepository {
	return &DemandRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *DemandRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, demand *market.DemandRequest) error {
	if _, err := r.queries.CreateDemandRequest(ctx, tx, converter.DemandRequestToCreateParams(demand)); err != nil {
		return infra.WrapRepoErr("failed to create demand request", err)
	}
	return nil
}

func (r *DemandRequestRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.DemandRequest, error) {
	row, err := r.queries.GetDemandRequestForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("demand request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock demand request", err)
	}
	demand, err := converter.DemandRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode demand request", err, infra.KindDBFailure)
	}
	return demand, nil
}

func (r *DemandRequestRepository) Update(ctx context.Context, tx sqlc.DBTX, demand *market.DemandRequest) error {
	if err := r.queries.UpdateDemandRequest(ctx, tx, converter.DemandRequestToUpdateParams(demand)); err != nil {
		return infra.WrapRepoErr("failed to update demand request", err)
	}
	return nil
}

func (r *DemandRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteDemandRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete demand request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("demand request not found", nil, infra.KindNotFound)
	}
	return nil
}
