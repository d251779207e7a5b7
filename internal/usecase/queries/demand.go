package queries

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/domain/matching"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxCandidateLimit = 50

type DemandRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DemandRequestView, error)
	FindRecordByID(ctx context.Context, id uuid.UUID) (*market.DemandRequest, error)
	// ListOpen returns active and matched requests, newest first.
	ListOpen(ctx context.Context) ([]*DemandRequestView, error)
}

type DemandRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DemandRequestView, error)
	ListOpen(ctx context.Context) ([]*DemandRequestView, error)
	// Candidates ranks the available offers for a request.
	Candidates(ctx context.Context, id uuid.UUID, limit int) ([]*CandidateView, error)
}

type demandRequestQueriesImpl struct {
	demands  DemandRequestReadStore
	supplies SupplyOfferReadStore
}

func NewDemandRequestQueries(demands DemandRequestReadStore, supplies SupplyOfferReadStore) DemandRequestQueries {
	return &demandRequestQueriesImpl{
		demands:  demands,
		supplies: supplies,
	}
}

func (q *demandRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DemandRequestView, error) {
	demand, err := q.demands.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDemandRequestNotFound
		}
		return nil, err
	}
	return demand, nil
}

func (q *demandRequestQueriesImpl) ListOpen(ctx context.Context) ([]*DemandRequestView, error) {
	return q.demands.ListOpen(ctx)
}

func (q *demandRequestQueriesImpl) Candidates(ctx context.Context, id uuid.UUID, limit int) ([]*CandidateView, error) {
	if limit > MaxCandidateLimit {
		limit = MaxCandidateLimit
	}

	demand, err := q.demands.FindRecordByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDemandRequestNotFound
		}
		return nil, err
	}

	pool, err := q.supplies.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	// The requester's own offers can never be paired with it.
	pairable := pool[:0:0]
	for _, offer := range pool {
		if !offer.OwnedBy(demand.WalletAddress) {
			pairable = append(pairable, offer)
		}
	}

	ranked := matching.FindBestMatches(*demand, pairable, limit)
	views := make([]*CandidateView, 0, len(ranked))
	for _, c := range ranked {
		views = append(views, &CandidateView{
			SupplyOffer: SupplyOfferViewFromDomain(c.Supply),
			Score:       c.Compatibility.Score,
			Reasons:     c.Compatibility.Reasons,
		})
	}
	return views, nil
}

func SupplyOfferViewFromDomain(o market.SupplyOffer) SupplyOfferView {
	return SupplyOfferView{
		ID:            o.ID,
		WalletAddress: o.WalletAddress,
		CPUCores:      o.CPUCores,
		GPUCount:      o.GPUCount,
		GPUType:       o.GPUType,
		RAMGB:         o.RAMGB,
		StorageGB:     o.StorageGB,
		PricePerHour:  o.PricePerHour,
		Available:     o.Available,
		Location:      o.Location,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
