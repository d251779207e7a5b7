//go:build unit || e2e

package builder

import (
	"time"

	"compute-market/internal/domain/market"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MatchBuilder struct {
	ID              uuid.UUID
	SupplyOfferID   uuid.UUID
	DemandRequestID uuid.UUID
	AgreedPrice     decimal.Decimal
	Status          market.MatchStatus
	TxHash          string
	CreatedAt       time.Time
}

func NewMatchBuilder() *MatchBuilder {
	return &MatchBuilder{
		ID:              uuid.New(),
		SupplyOfferID:   uuid.New(),
		DemandRequestID: uuid.New(),
		AgreedPrice:     decimal.RequireFromString("0.50"),
		Status:          market.MatchPending,
		CreatedAt:       time.Now(),
	}
}

// Between points the match at an existing offer and request and takes the offer's price.
func (b *MatchBuilder) Between(offer *market.SupplyOffer, demand *market.DemandRequest) *MatchBuilder {
	b.SupplyOfferID = offer.ID
	b.DemandRequestID = demand.ID
	b.AgreedPrice = offer.PricePerHour
	return b
}

func (b *MatchBuilder) WithStatus(status market.MatchStatus) *MatchBuilder {
	b.Status = status
	return b
}

func (b *MatchBuilder) WithTxHash(hash string) *MatchBuilder {
	b.TxHash = hash
	return b
}

func (b *MatchBuilder) BuildDomain() *market.Match {
	return &market.Match{
		ID:              b.ID,
		SupplyOfferID:   b.SupplyOfferID,
		DemandRequestID: b.DemandRequestID,
		AgreedPrice:     b.AgreedPrice,
		Status:          b.Status,
		TxHash:          b.TxHash,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *MatchBuilder) BuildRow() sqlc.Matches {
	return sqlc.Matches{
		ID:              b.ID,
		SupplyOfferID:   b.SupplyOfferID,
		DemandRequestID: b.DemandRequestID,
		AgreedPrice:     pgconv.NumericFromDecimal(b.AgreedPrice),
		Status:          b.Status.String(),
		TxHash:          pgconv.StringToPgtype(b.TxHash),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

// BuildViewQuery joins the match with the given sides; the IDs follow the views.
func (b *MatchBuilder) BuildViewQuery(supply *queries.SupplyOfferView, demand *queries.DemandRequestView) *queries.MatchView {
	return &queries.MatchView{
		ID:              b.ID,
		SupplyOfferID:   supply.ID,
		DemandRequestID: demand.ID,
		AgreedPrice:     b.AgreedPrice,
		Status:          b.Status.String(),
		TxHash:          b.TxHash,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
		SupplyOffer:     *supply,
		DemandRequest:   *demand,
	}
}
