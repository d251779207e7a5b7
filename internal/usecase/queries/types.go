package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultTransactionPageSize = 50
	MaxTransactionPageSize     = 200
)

// SupplyOfferView represents read-optimized supply offer data
type SupplyOfferView struct {
	ID            uuid.UUID       `json:"id"`
	WalletAddress string          `json:"walletAddress"`
	CPUCores      int             `json:"cpuCores"`
	GPUCount      int             `json:"gpuCount"`
	GPUType       string          `json:"gpuType,omitempty"`
	RAMGB         int             `json:"ramGB"`
	StorageGB     int             `json:"storageGB"`
	PricePerHour  decimal.Decimal `json:"pricePerHour"`
	Available     bool            `json:"available"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// DemandRequestView represents read-optimized demand request data
type DemandRequestView struct {
	ID              uuid.UUID       `json:"id"`
	WalletAddress   string          `json:"walletAddress"`
	CPUCores        int             `json:"cpuCores"`
	GPUCount        int             `json:"gpuCount"`
	GPUType         string          `json:"gpuType,omitempty"`
	RAMGB           int             `json:"ramGB"`
	StorageGB       int             `json:"storageGB"`
	MaxPricePerHour decimal.Decimal `json:"maxPricePerHour"`
	Duration        int             `json:"duration"`
	JobDescription  string          `json:"jobDescription,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// MatchView is a match joined with both sides it pairs.
type MatchView struct {
	ID              uuid.UUID         `json:"id"`
	SupplyOfferID   uuid.UUID         `json:"supplyOfferId"`
	DemandRequestID uuid.UUID         `json:"demandRequestId"`
	AgreedPrice     decimal.Decimal   `json:"agreedPrice"`
	Status          string            `json:"status"`
	TxHash          string            `json:"txHash,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	SupplyOffer     SupplyOfferView   `json:"supplyOffer"`
	DemandRequest   DemandRequestView `json:"demandRequest"`
}

type TransactionView struct {
	ID             uuid.UUID       `json:"id"`
	MatchID        uuid.UUID       `json:"matchId"`
	TxHash         string          `json:"txHash"`
	Amount         decimal.Decimal `json:"amount"`
	Token          string          `json:"token"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	MatchStatus    string          `json:"matchStatus"`
	AgreedPrice    decimal.Decimal `json:"agreedPrice"`
	SupplierWallet string          `json:"supplierWallet"`
	BuyerWallet    string          `json:"buyerWallet"`
}

type TransactionFilter struct {
	WalletAddress string
	Limit         int
	Offset        int
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type TransactionPage struct {
	Items      []*TransactionView `json:"items"`
	Pagination Pagination         `json:"pagination"`
}

// CandidateView is one ranked offer for a demand request.
type CandidateView struct {
	SupplyOffer SupplyOfferView `json:"supplyOffer"`
	Score       float64         `json:"score"`
	Reasons     []string        `json:"reasons"`
}

// MarketStatsSnapshot holds the raw aggregates read from storage.
type MarketStatsSnapshot struct {
	SupplyTotal           int64
	SupplyAvailable       int64
	SupplyRecent          int64
	SupplyAveragePrice    decimal.Decimal
	DemandTotal           int64
	DemandActive          int64
	DemandRecent          int64
	DemandAverageMaxPrice decimal.Decimal
	MatchTotal            int64
	MatchRecent           int64
	AverageMatchSeconds   float64
	TransactionConfirmed  int64
	TransactionVolume     decimal.Decimal
}

type NetworkHealth string

const (
	NetworkHealthy     NetworkHealth = "healthy"
	NetworkLowActivity NetworkHealth = "low_activity"
)

type SupplyStats struct {
	Total        int64           `json:"total"`
	Available    int64           `json:"available"`
	Recent24h    int64           `json:"recent24h"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

type DemandStats struct {
	Total           int64           `json:"total"`
	Active          int64           `json:"active"`
	Recent24h       int64           `json:"recent24h"`
	AverageMaxPrice decimal.Decimal `json:"averageMaxPrice"`
}

type MatchStats struct {
	Total                   int64   `json:"total"`
	Recent24h               int64   `json:"recent24h"`
	AverageMatchTimeSeconds float64 `json:"averageMatchTimeSeconds"`
}

type TransactionStats struct {
	Confirmed int64           `json:"confirmed"`
	Volume    decimal.Decimal `json:"volume"`
}

type MarketplaceStats struct {
	UtilizationRate float64       `json:"utilizationRate"`
	NetworkHealth   NetworkHealth `json:"networkHealth"`
}

type MarketStats struct {
	Supply       SupplyStats      `json:"supply"`
	Demand       DemandStats      `json:"demand"`
	Matches      MatchStats       `json:"matches"`
	Transactions TransactionStats `json:"transactions"`
	Marketplace  MarketplaceStats `json:"marketplace"`
	GeneratedAt  time.Time        `json:"generatedAt"`
}

type USDCBalanceView struct {
	WalletAddress string          `json:"walletAddress"`
	Balance       decimal.Decimal `json:"balance"`
	Token         string          `json:"token"`
	Contract      string          `json:"contract"`
}
