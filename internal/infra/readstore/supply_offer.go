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
	"github.com/jackc/pgx/v5/pgtype"
)

type SupplyOfferReadQueries interface {
	GetSupplyOfferByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.SupplyOffers, error)
	ListSupplyOffers(ctx context.Context, db sqlc.DBTX, available pgtype.Bool) ([]sqlc.SupplyOffers, error)
	ListAvailableSupplyOffers(ctx context.Context, db sqlc.DBTX) ([]sqlc.SupplyOffers, error)
}

type SupplyOfferReadStore struct {
	queries SupplyOfferReadQueries
	db      sqlc.DBTX
}

func NewSupplyOfferReadStore(queries SupplyOfferReadQueries, db sqlc.DBTX) *SupplyOfferReadStore {
	return &SupplyOfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SupplyOfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SupplyOfferView, error) {
	row, err := r.queries.GetSupplyOfferByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("supply offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get supply offer by id", err)
	}
	view, err := toSupplyOfferView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode supply offer", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *SupplyOfferReadStore) List(ctx context.Context, available *bool) ([]*queries.SupplyOfferView, error) {
	rows, err := r.queries.ListSupplyOffers(ctx, r.db, pgconv.BoolPtrToPgtype(available))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list supply offers", err)
	}
	views := make([]*queries.SupplyOfferView, 0, len(rows))
	for _, row := range rows {
		view, err := toSupplyOfferView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode supply offer", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *SupplyOfferReadStore) ListAvailable(ctx context.Context) ([]market.SupplyOffer, error) {
	rows, err := r.queries.ListAvailableSupplyOffers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available supply offers", err)
	}
	pool := make([]market.SupplyOffer, 0, len(rows))
	for _, row := range rows {
		offer, err := converter.SupplyOfferFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode supply offer", err, infra.KindDBFailure)
		}
		pool = append(pool, *offer)
	}
	return pool, nil
}
