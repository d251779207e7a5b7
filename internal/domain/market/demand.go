package market

import (
	"strings"
	"time"
	"unicode/utf8"

	"compute-market/internal/domain/settlement"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandRequest asks for at least the given resources within a price ceiling.
type DemandRequest struct {
	ID            uuid.UUID
	WalletAddress string
	Resources
	MaxPricePerHour decimal.Decimal
	DurationHours   int
	JobDescription  string
	Status          DemandStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewDemandRequestParams struct {
	WalletAddress   string
	Resources       Resources
	MaxPricePerHour decimal.Decimal
	DurationHours   int
	JobDescription  string
}

func NewDemandRequest(p NewDemandRequestParams, now time.Time) (*DemandRequest, error) {
	wallet, err := settlement.NormalizeAddress(p.WalletAddress)
	if err != nil {
		return nil, err
	}
	res := p.Resources
	res.GPUType = strings.TrimSpace(res.GPUType)
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if err := validatePrice(p.MaxPricePerHour); err != nil {
		return nil, err
	}
	if p.DurationHours < MinDurationHours || p.DurationHours > MaxDurationHours {
		return nil, ErrInvalidDuration
	}
	desc := strings.TrimSpace(p.JobDescription)
	if utf8.RuneCountInString(desc) > MaxJobDescriptionLength {
		return nil, ErrJobDescriptionTooLong
	}

	return &DemandRequest{
		ID:              uuid.New(),
		WalletAddress:   wallet,
		Resources:       res,
		MaxPricePerHour: p.MaxPricePerHour,
		DurationHours:   p.DurationHours,
		JobDescription:  desc,
		Status:          DemandActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

type DemandRequestUpdate struct {
	Status          *DemandStatus
	MaxPricePerHour *decimal.Decimal
}

func (d *DemandRequest) Apply(u DemandRequestUpdate, now time.Time) error {
	if u.MaxPricePerHour != nil {
		if err := validatePrice(*u.MaxPricePerHour); err != nil {
			return err
		}
		d.MaxPricePerHour = *u.MaxPricePerHour
	}
	if u.Status != nil {
		if _, err := ParseDemandStatus(string(*u.Status)); err != nil {
			return err
		}
		d.Status = *u.Status
	}
	d.UpdatedAt = now
	return nil
}

func (d *DemandRequest) OwnedBy(wallet string) bool {
	return settlement.SameAddress(d.WalletAddress, wallet)
}
