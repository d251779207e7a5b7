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

type DemandRequestBuilder struct {
	ID              uuid.UUID
	WalletAddress   string
	CPUCores        int
	GPUCount        int
	GPUType         string
	RAMGB           int
	StorageGB       int
	MaxPricePerHour decimal.Decimal
	DurationHours   int
	JobDescription  string
	Status          market.DemandStatus
	CreatedAt       time.Time
}

func NewDemandRequestBuilder() *DemandRequestBuilder {
	return &DemandRequestBuilder{
		ID:              uuid.New(),
		WalletAddress:   BuyerWallet,
		CPUCores:        4,
		GPUCount:        0,
		RAMGB:           8,
		StorageGB:       100,
		MaxPricePerHour: decimal.RequireFromString("1.00"),
		DurationHours:   24,
		JobDescription:  "render farm batch",
		Status:          market.DemandActive,
		CreatedAt:       time.Now(),
	}
}

func (b *DemandRequestBuilder) With(mutate func(*DemandRequestBuilder)) *DemandRequestBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildRecord skips validation so degenerate inputs can be expressed.
func (b *DemandRequestBuilder) BuildRecord() market.DemandRequest {
	return market.DemandRequest{
		ID:              b.ID,
		WalletAddress:   b.WalletAddress,
		Resources:       b.resources(),
		MaxPricePerHour: b.MaxPricePerHour,
		DurationHours:   b.DurationHours,
		JobDescription:  b.JobDescription,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *DemandRequestBuilder) BuildDomain() (*market.DemandRequest, error) {
	return market.NewDemandRequest(market.NewDemandRequestParams{
		WalletAddress:   b.WalletAddress,
		Resources:       b.resources(),
		MaxPricePerHour: b.MaxPricePerHour,
		DurationHours:   b.DurationHours,
		JobDescription:  b.JobDescription,
	}, b.CreatedAt)
}

func (b *DemandRequestBuilder) BuildRow() sqlc.DemandRequests {
	return sqlc.DemandRequests{
		ID:              b.ID,
		WalletAddress:   b.WalletAddress,
		CpuCores:        pgconv.IntToInt32(b.CPUCores),
		GpuCount:        pgconv.IntToInt32(b.GPUCount),
		GpuType:         pgconv.StringToPgtype(b.GPUType),
		RamGb:           pgconv.IntToInt32(b.RAMGB),
		StorageGb:       pgconv.IntToInt32(b.StorageGB),
		MaxPricePerHour: pgconv.NumericFromDecimal(b.MaxPricePerHour),
		DurationHours:   pgconv.IntToInt32(b.DurationHours),
		JobDescription:  pgconv.StringToPgtype(b.JobDescription),
		Status:          b.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *DemandRequestBuilder) BuildCreateRequestDTO() reqdto.CreateDemandRequest {
	req := reqdto.CreateDemandRequest{
		CPUCores:        b.CPUCores,
		GPUCount:        b.GPUCount,
		RAMGB:           b.RAMGB,
		StorageGB:       b.StorageGB,
		MaxPricePerHour: b.MaxPricePerHour,
		Duration:        b.DurationHours,
	}
	if b.GPUType != "" {
		gpuType := b.GPUType
		req.GPUType = &gpuType
	}
	if b.JobDescription != "" {
		desc := b.JobDescription
		req.JobDescription = &desc
	}
	return req
}

func (b *DemandRequestBuilder) BuildViewQuery() *queries.DemandRequestView {
	return &queries.DemandRequestView{
		ID:              b.ID,
		WalletAddress:   b.WalletAddress,
		CPUCores:        b.CPUCores,
		GPUCount:        b.GPUCount,
		GPUType:         b.GPUType,
		RAMGB:           b.RAMGB,
		StorageGB:       b.StorageGB,
		MaxPricePerHour: b.MaxPricePerHour,
		Duration:        b.DurationHours,
		JobDescription:  b.JobDescription,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *DemandRequestBuilder) resources() market.Resources {
	return market.Resources{
		CPUCores:  b.CPUCores,
		GPUCount:  b.GPUCount,
		GPUType:   b.GPUType,
		RAMGB:     b.RAMGB,
		StorageGB: b.StorageGB,
	}
}

// Fluent builder methods
func (b *DemandRequestBuilder) WithID(id uuid.UUID) *DemandRequestBuilder {
	b.ID = id
	return b
}

func (b *DemandRequestBuilder) WithWallet(wallet string) *DemandRequestBuilder {
	b.WalletAddress = wallet
	return b
}

func (b *DemandRequestBuilder) WithResources(cpu, gpu, ram, storage int) *DemandRequestBuilder {
	b.CPUCores = cpu
	b.GPUCount = gpu
	b.RAMGB = ram
	b.StorageGB = storage
	return b
}

func (b *DemandRequestBuilder) WithGPU(count int, gpuType string) *DemandRequestBuilder {
	b.GPUCount = count
	b.GPUType = gpuType
	return b
}

func (b *DemandRequestBuilder) WithMaxPrice(price string) *DemandRequestBuilder {
	b.MaxPricePerHour = decimal.RequireFromString(price)
	return b
}

func (b *DemandRequestBuilder) WithDuration(hours int) *DemandRequestBuilder {
	b.DurationHours = hours
	return b
}

func (b *DemandRequestBuilder) WithJobDescription(desc string) *DemandRequestBuilder {
	b.JobDescription = desc
	return b
}

func (b *DemandRequestBuilder) WithStatus(status market.DemandStatus) *DemandRequestBuilder {
	b.Status = status
	return b
}
