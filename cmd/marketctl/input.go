package main

import (
	"encoding/json"
	"os"
	"strings"

	"compute-market/internal/domain/market"
	"compute-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// supplyInput mirrors the supply offer JSON returned by the API.
type supplyInput struct {
	ID            uuid.UUID       `json:"id"`
	WalletAddress string          `json:"walletAddress"`
	CPUCores      int             `json:"cpuCores"`
	GPUCount      int             `json:"gpuCount"`
	GPUType       string          `json:"gpuType"`
	RAMGB         int             `json:"ramGB"`
	StorageGB     int             `json:"storageGB"`
	PricePerHour  decimal.Decimal `json:"pricePerHour"`
	Available     *bool           `json:"available"`
	Location      string          `json:"location"`
}

// demandInput mirrors the demand request JSON returned by the API.
type demandInput struct {
	ID              uuid.UUID       `json:"id"`
	WalletAddress   string          `json:"walletAddress"`
	CPUCores        int             `json:"cpuCores"`
	GPUCount        int             `json:"gpuCount"`
	GPUType         string          `json:"gpuType"`
	RAMGB           int             `json:"ramGB"`
	StorageGB       int             `json:"storageGB"`
	MaxPricePerHour decimal.Decimal `json:"maxPricePerHour"`
	Duration        int             `json:"duration"`
	JobDescription  string          `json:"jobDescription"`
	Status          string          `json:"status"`
}

// Missing availability means available, the way new offers are created.
func (s supplyInput) toDomain() market.SupplyOffer {
	available := true
	if s.Available != nil {
		available = *s.Available
	}
	return market.SupplyOffer{
		ID:            s.ID,
		WalletAddress: s.WalletAddress,
		Resources: market.Resources{
			CPUCores:  s.CPUCores,
			GPUCount:  s.GPUCount,
			GPUType:   s.GPUType,
			RAMGB:     s.RAMGB,
			StorageGB: s.StorageGB,
		},
		PricePerHour: s.PricePerHour,
		Available:    available,
		Location:     s.Location,
	}
}

func (d demandInput) toDomain() (market.DemandRequest, error) {
	status := market.DemandActive
	if d.Status != "" {
		parsed, err := market.ParseDemandStatus(d.Status)
		if err != nil {
			return market.DemandRequest{}, err
		}
		status = parsed
	}
	return market.DemandRequest{
		ID:            d.ID,
		WalletAddress: d.WalletAddress,
		Resources: market.Resources{
			CPUCores:  d.CPUCores,
			GPUCount:  d.GPUCount,
			GPUType:   d.GPUType,
			RAMGB:     d.RAMGB,
			StorageGB: d.StorageGB,
		},
		MaxPricePerHour: d.MaxPricePerHour,
		DurationHours:   d.Duration,
		JobDescription:  d.JobDescription,
		Status:          status,
	}, nil
}

func loadDemand(path string) (market.DemandRequest, error) {
	var in demandInput
	if err := readJSON(path, &in); err != nil {
		return market.DemandRequest{}, err
	}
	return in.toDomain()
}

// loadSupplies accepts either a JSON array of offers or a single offer object.
func loadSupplies(path string) ([]market.SupplyOffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read %s", path)
	}

	var inputs []supplyInput
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
		var single supplyInput
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, errs.Wrapf(err, "failed to decode %s", path)
		}
		inputs = []supplyInput{single}
	} else if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, errs.Wrapf(err, "failed to decode %s", path)
	}

	pool := make([]market.SupplyOffer, len(inputs))
	for i, in := range inputs {
		pool[i] = in.toDomain()
	}
	return pool, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrapf(err, "failed to read %s", path)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errs.Wrapf(err, "failed to decode %s", path)
	}
	return nil
}
