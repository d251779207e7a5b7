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

type SupplyOfferWriteQueries interface {
	CreateSupplyOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSupplyOfferParams) (sqlc.SupplyOffers, error)
	GetSupplyOfferForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SupplyOffers, error)
	UpdateSupplyOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSupplyOfferParams) error
	DeleteSupplyOffer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SupplyOfferRepository struct {
	queries SupplyOfferWriteQueries
	db      sqlc.DBTX
}

func NewSupplyOfferRepository(queries SupplyOfferWriteQueries, db sqlc.DBTX) *SupplyOfferRepository {
	return &SupplyOfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SupplyOfferRepository) Create(ctx context.Context, tx sqlc.DBTX, offer *market.SupplyOffer) error {
	if _, err := r.queries.CreateSupplyOffer(ctx, tx, converter.SupplyOfferToCreateParams(offer)); err != nil {
		return infra.WrapRepoErr("failed to create supply offer", err)
	}
	return nil
}

func (r *SupplyOfferRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*market.SupplyOffer, error) {
	row, err := r.queries.GetSupplyOfferForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supply offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock supply offer", err)
	}
	offer, err := converter.SupplyOfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode supply offer", err, infra.KindDBFailure)
	}
	return offer, nil
}

func (r *SupplyOfferRepository) Update(ctx context.Context, tx sqlc.DBTX, offer *market.SupplyOffer) error {
	if err := r.queries.UpdateSupplyOffer(ctx, tx, converter.SupplyOfferToUpdateParams(offer)); err != nil {
		return infra.WrapRepoErr("failed to update supply offer", err)
	}
	return nil
}

func (r *SupplyOfferRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSupplyOffer(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete supply offer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("supply offer not found", nil, infra.KindNotFound)
	}
	return nil
}
