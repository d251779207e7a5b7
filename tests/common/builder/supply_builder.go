//go:build unit || e2e

package builder

import (
	"time"

	"compute-market/internal/domain/market"
	reqdto "compute-market/internal/handler/dto/request"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SupplierWallet = "0x52908400098527886E0F7030069857D2E4169EE7"
	BuyerWallet    = "0xde709f2102306220921060314715629080e2fb77"
)

type SupplyOfferBuilder struct {
	ID            uuid.UUID
	WalletAddress string
	CPUCores      int
	GPUCount      int
	GPUType       string
	RAMGB         int
	StorageGB     int
	PricePerHour  decimal.Decimal
	Available     bool
	Location      string
	CreatedAt     time.Time
}

func NewSupplyOfferBuilder() *SupplyOfferBuilder {
	return &SupplyOfferBuilder{
		ID:            uuid.New(),
		WalletAddress: SupplierWallet,
		CPUCores:      8,
		GPUCount:      0,
		RAMGB:         16,
		StorageGB:     200,
		PricePerHour:  decimal.RequireFromString("0.50"),
		Available:     true,
		Location:      "eu-west",
		CreatedAt:     time.Now(),
	}
}

func (b *SupplyOfferBuilder) With(mutate func(*SupplyOfferBuilder)) *SupplyOfferBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildRecord skips validation so degenerate inputs can be expressed.
func (b *SupplyOfferBuilder) BuildRecord() market.SupplyOffer {
	return market.SupplyOffer{
		ID:            b.ID,
		WalletAddress: b.WalletAddress,
		Resources:     b.resources(),
		PricePerHour:  b.PricePerHour,
		Available:     b.Available,
		Location:      b.Location,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *SupplyOfferBuilder) BuildDomain() (*market.SupplyOffer, error) {
	return market.NewSupplyOffer(market.NewSupplyOfferParams{
		WalletAddress: b.WalletAddress,
		Resources:     b.resources(),
		PricePerHour:  b.PricePerHour,
		Location:      b.Location,
	}, b.CreatedAt)
}

func (b *SupplyOfferBuilder) BuildRow() sqlc.SupplyOffers {
	return sqlc.SupplyOffers{
		ID:            b.ID,
		WalletAddress: b.WalletAddress,
		CpuCores:      pgconv.IntToInt32(b.CPUCores),
		GpuCount:      pgconv.IntToInt32(b.GPUCount),
		GpuType:       pgconv.StringToPgtype(b.GPUType),
		RamGb:         pgconv.IntToInt32(b.RAMGB),
		StorageGb:     pgconv.IntToInt32(b.StorageGB),
		PricePerHour:  pgconv.NumericFromDecimal(b.PricePerHour),
		Available:     b.Available,
		Location:      pgconv.StringToPgtype(b.Location),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *SupplyOfferBuilder) BuildCreateRequestDTO() reqdto.CreateSupplyOfferRequest {
	req := reqdto.CreateSupplyOfferRequest{
		CPUCores:     b.CPUCores,
		GPUCount:     b.GPUCount,
		RAMGB:        b.RAMGB,
		StorageGB:    b.StorageGB,
		PricePerHour: b.PricePerHour,
	}
	if b.GPUType != "" {
		gpuType := b.GPUType
		req.GPUType = &gpuType
	}
	if b.Location != "" {
		location := b.Location
		req.Location = &location
	}
	return req
}

func (b *SupplyOfferBuilder) BuildViewQuery() *queries.SupplyOfferView {
	return &queries.SupplyOfferView{
		ID:            b.ID,
		WalletAddress: b.WalletAddress,
		CPUCores:      b.CPUCores,
		GPUCount:      b.GPUCount,
		GPUType:       b.GPUType,
		RAMGB:         b.RAMGB,
		StorageGB:     b.StorageGB,
		PricePerHour:  b.PricePerHour,
		Available:     b.Available,
		Location:      b.Location,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *SupplyOfferBuilder) resources() market.Resources {
	return market.Resources{
		CPUCores:  b.CPUCores,
		GPUCount:  b.GPUCount,
		GPUType:   b.GPUType,
		RAMGB:     b.RAMGB,
		StorageGB: b.StorageGB,
	}
}

// Fluent builder methods
func (b *SupplyOfferBuilder) WithID(id uuid.UUID) *SupplyOfferBuilder {
	b.ID = id
	return b
}

func (b *SupplyOfferBuilder) WithWallet(wallet string) *SupplyOfferBuilder {
	b.WalletAddress = wallet
	return b
}

func (b *SupplyOfferBuilder) WithResources(cpu, gpu, ram, storage int) *SupplyOfferBuilder {
	b.CPUCores = cpu
	b.GPUCount = gpu
	b.RAMGB = ram
	b.StorageGB = storage
	return b
}

func (b *SupplyOfferBuilder) WithCPUCores(cpu int) *SupplyOfferBuilder {
	b.CPUCores = cpu
	return b
}

func (b *SupplyOfferBuilder) WithGPU(count int, gpuType string) *SupplyOfferBuilder {
	b.GPUCount = count
	b.GPUType = gpuType
	return b
}

func (b *SupplyOfferBuilder) WithPrice(price string) *SupplyOfferBuilder {
	b.PricePerHour = decimal.RequireFromString(price)
	return b
}

func (b *SupplyOfferBuilder) WithAvailable(available bool) *SupplyOfferBuilder {
	b.Available = available
	return b
}

func (b *SupplyOfferBuilder) WithLocation(location string) *SupplyOfferBuilder {
	b.Location = location
	return b
}
