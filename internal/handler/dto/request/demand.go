package request

import (
	"compute-market/internal/domain/market"
	"compute-market/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

type CreateDemandRequest struct {
	CPUCores        int             `json:"cpuCores" binding:"required,min=1,max=128"`
	GPUCount        int             `json:"gpuCount" binding:"min=0,max=16"`
	GPUType         *string         `json:"gpuType,omitempty" binding:"omitempty,max=64"`
	RAMGB           int             `json:"ramGB" binding:"required,min=1,max=1024"`
	StorageGB       int             `json:"storageGB" binding:"required,min=1,max=10000"`
	MaxPricePerHour decimal.Decimal `json:"maxPricePerHour"`
	Duration        int             `json:"duration" binding:"required,min=1,max=8760"`
	JobDescription  *string         `json:"jobDescription,omitempty" binding:"omitempty,max=500"`
}

func (r CreateDemandRequest) ToParams(wallet string) market.NewDemandRequestParams {
	return market.NewDemandRequestParams{
		WalletAddress: wallet,
		Resources: market.Resources{
			CPUCores:  r.CPUCores,
			GPUCount:  r.GPUCount,
			GPUType:   patch.Coalesce(r.GPUType, ""),
			RAMGB:     r.RAMGB,
			StorageGB: r.StorageGB,
		},
		MaxPricePerHour: r.MaxPricePerHour,
		DurationHours:   r.Duration,
		JobDescription:  patch.Coalesce(r.JobDescription, ""),
	}
}

type UpdateDemandRequest struct {
	Status          *string          `json:"status,omitempty" binding:"omitempty,oneof=active matched completed cancelled"`
	MaxPricePerHour *decimal.Decimal `json:"maxPricePerHour,omitempty"`
}

func (r UpdateDemandRequest) ToUpdate() (market.DemandRequestUpdate, error) {
	u := market.DemandRequestUpdate{MaxPricePerHour: r.MaxPricePerHour}
	if r.Status != nil {
		st, err := market.ParseDemandStatus(*r.Status)
		if err != nil {
			return market.DemandRequestUpdate{}, err
		}
		u.Status = &st
	}
	return u, nil
}
