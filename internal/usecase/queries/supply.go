package queries

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type SupplyOfferReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SupplyOfferView, error)
	// List returns offers newest first; a nil filter returns every offer.
	List(ctx context.Context, available *bool) ([]*SupplyOfferView, error)
	// ListAvailable returns the matching pool, oldest first.
	ListAvailable(ctx context.Context) ([]market.SupplyOffer, error)
}

type SupplyOfferQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SupplyOfferView, error)
	List(ctx context.Context, available *bool) ([]*SupplyOfferView, error)
}

type supplyOfferQueriesImpl struct {
	readStore SupplyOfferReadStore
}

func NewSupplyOfferQueries(readStore SupplyOfferReadStore) SupplyOfferQueries {
	return &supplyOfferQueriesImpl{readStore: readStore}
}

func (q *supplyOfferQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SupplyOfferView, error) {
	offer, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSupplyOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (q *supplyOfferQueriesImpl) List(ctx context.Context, available *bool) ([]*SupplyOfferView, error) {
	return q.readStore.List(ctx, available)
}
