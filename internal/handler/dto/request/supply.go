package request

import (
	"compute-market/internal/domain/market"
	"compute-market/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type CreateSupplyOfferRequest struct {
	CPUCores     int             `json:"cpuCores" binding:"required,min=1,max=128"`
	GPUCount     int             `json:"gpuCount" binding:"min=0,max=16"`
	GPUType      *string         `json:"gpuType,omitempty" binding:"omitempty,max=64"`
	RAMGB        int             `json:"ramGB" binding:"required,min=1,max=1024"`
	StorageGB    int             `json:"storageGB" binding:"required,min=1,max=10000"`
	PricePerHour decimal.Decimal `json:"pricePerHour"`
	Location     *string         `json:"location,omitempty" binding:"omitempty,max=128"`
}

func (r CreateSupplyOfferRequest) ToParams(wallet string) market.NewSupplyOfferParams {
	return market.NewSupplyOfferParams{
		WalletAddress: wallet,
		Resources: market.Resources{
			CPUCores:  r.CPUCores,
			GPUCount:  r.GPUCount,
			GPUType:   patch.Coalesce(r.GPUType, ""),
			RAMGB:     r.RAMGB,
			StorageGB: r.StorageGB,
		},
		PricePerHour: r.PricePerHour,
		Location:     patch.Coalesce(r.Location, ""),
	}
}

type UpdateSupplyOfferRequest struct {
	Available    *bool            `json:"available,omitempty"`
	PricePerHour *decimal.Decimal `json:"pricePerHour,omitempty"`
	Location     *string          `json:"location,omitempty" binding:"omitempty,max=128"`
}

func (r UpdateSupplyOfferRequest) ToUpdate() market.SupplyOfferUpdate {
	return market.SupplyOfferUpdate{
		Available:    r.Available,
		PricePerHour: r.PricePerHour,
		Location:     r.Location,
	}
}
