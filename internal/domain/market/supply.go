package market

import (
	"strings"
	"time"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplyOffer advertises hardware for rent at an hourly price.
type SupplyOffer struct {
	ID            uuid.UUID
	WalletAddress string
	Resources
	PricePerHour decimal.Decimal
	Available    bool
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type NewSupplyOfferParams struct {
	WalletAddress string
	Resources     Resources
	PricePerHour  decimal.Decimal
	Location      string
}

func NewSupplyOffer(p NewSupplyOfferParams, now time.Time) (*SupplyOffer, error) {
	wallet, err := settlement.NormalizeAddress(p.WalletAddress)
	if err != nil {
		return nil, err
	}
	res := p.Resources
	res.GPUType = strings.TrimSpace(res.GPUType)
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if err := validatePrice(p.PricePerHour); err != nil {
		return nil, err
	}

	return &SupplyOffer{
		ID:            uuid.New(),
		WalletAddress: wallet,
		Resources:     res,
		PricePerHour:  p.PricePerHour,
		Available:     true,
		Location:      strings.TrimSpace(p.Location),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SupplyOfferUpdate carries the fields an owner may change; nil leaves a field as is.
type SupplyOfferUpdate struct {
	Available    *bool
	PricePerHour *decimal.Decimal
	Location     *string
}

func (o *SupplyOffer) Apply(u SupplyOfferUpdate, now time.Time) error {
	if u.PricePerHour != nil {
		if err := validatePrice(*u.PricePerHour); err != nil {
			return err
		}
		o.PricePerHour = *u.PricePerHour
	}
	o.Available = patch.Coalesce(u.Available, o.Available)
	o.Location = strings.TrimSpace(patch.Coalesce(u.Location, o.Location))
	o.UpdatedAt = now
	return nil
}

func (o *SupplyOffer) OwnedBy(wallet string) bool {
	return settlement.SameAddress(o.WalletAddress, wallet)
}
