package market

import (
	"time"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOfferUnavailable = errs.New("supply offer is not available")
	ErrDemandNotActive  = errs.New("demand request is not active")
	ErrSelfMatch        = errs.New("supply offer and demand request belong to the same wallet")
)

// Match pairs one offer with one request at the offer's price at pairing time.
type Match struct {
	ID              uuid.UUID
	SupplyOfferID   uuid.UUID
	DemandRequestID uuid.UUID
	AgreedPrice     decimal.Decimal
	Status          MatchStatus
	TxHash          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Pair creates a pending match and reserves both sides: the offer becomes
// unavailable and the request becomes matched.
func Pair(offer *SupplyOffer, demand *DemandRequest, now time.Time) (*Match, error) {
	if !offer.Available {
		return nil, ErrOfferUnavailable
	}
	if demand.Status != DemandActive {
		return nil, ErrDemandNotActive
	}
	if offer.OwnedBy(demand.WalletAddress) {
		return nil, ErrSelfMatch
	}

	offer.Available = false
	offer.UpdatedAt = now
	demand.Status = DemandMatched
	demand.UpdatedAt = now

	return &Match{
		ID:              uuid.New(),
		SupplyOfferID:   offer.ID,
		DemandRequestID: demand.ID,
		AgreedPrice:     offer.PricePerHour,
		Status:          MatchPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Release undoes the reservation made by Pair.
func Release(offer *SupplyOffer, demand *DemandRequest, now time.Time) {
	offer.Available = true
	offer.UpdatedAt = now
	demand.Status = DemandActive
	demand.UpdatedAt = now
}

// TransitionTo moves the match to s and applies the consequence to the
// request and offer. Completed and cancelled matches are final.
func (m *Match) TransitionTo(s MatchStatus, offer *SupplyOffer, demand *DemandRequest, now time.Time) error {
	if s == m.Status {
		return nil
	}
	if m.Status.Terminal() {
		return ErrIllegalTransition
	}

	switch s {
	case MatchCompleted:
		demand.Status = DemandCompleted
		demand.UpdatedAt = now
	case MatchCancelled:
		Release(offer, demand, now)
	case MatchPending:
		if m.Status != MatchPending {
			return ErrIllegalTransition
		}
	}

	m.Status = s
	m.UpdatedAt = now
	return nil
}

func (m *Match) AttachTxHash(hash string, now time.Time) error {
	normalized, err := settlement.NormalizeTxHash(hash)
	if err != nil {
		return err
	}
	m.TxHash = normalized
	m.UpdatedAt = now
	return nil
}

// TotalCost is what the buyer pays the supplier for the whole request duration.
func (m *Match) TotalCost(durationHours int) decimal.Decimal {
	return settlement.TotalCost(m.AgreedPrice, durationHours)
}

func (m *Match) InvolvesWallet(wallet string, offer *SupplyOffer, demand *DemandRequest) bool {
	return offer.OwnedBy(wallet) || demand.OwnedBy(wallet)
}
