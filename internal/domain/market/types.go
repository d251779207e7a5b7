package market

import (
	"compute-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Resource ranges accepted at the API boundary.
const (
	MinCPUCores  = 1
	MaxCPUCores  = 128
	MinGPUCount  = 0
	MaxGPUCount  = 16
	MinRAMGB     = 1
	MaxRAMGB     = 1024
	MinStorageGB = 1
	MaxStorageGB = 10000

	MinDurationHours = 1
	MaxDurationHours = 8760

	MaxJobDescriptionLength = 500
)

var (
	MinPricePerHour = decimal.RequireFromString("0.01")
	MaxPricePerHour = decimal.NewFromInt(1000)
)

var (
	ErrInvalidCPUCores       = errs.New("cpu cores must be between 1 and 128")
	ErrInvalidGPUCount       = errs.New("gpu count must be between 0 and 16")
	ErrInvalidRAM            = errs.New("ram must be between 1 and 1024 GB")
	ErrInvalidStorage        = errs.New("storage must be between 1 and 10000 GB")
	ErrInvalidPrice          = errs.New("price per hour must be between 0.01 and 1000")
	ErrInvalidDuration       = errs.New("duration must be between 1 and 8760 hours")
	ErrJobDescriptionTooLong = errs.New("job description exceeds 500 characters")
	ErrInvalidDemandStatus   = errs.New("invalid demand status")
	ErrInvalidMatchStatus    = errs.New("invalid match status")
	ErrInvalidTxStatus       = errs.New("invalid transaction status")
	ErrInvalidAmount         = errs.New("amount must be positive")
	ErrIllegalTransition     = errs.New("status transition not allowed")
)

// Resources is the hardware shape shared by offers and requests.
type Resources struct {
	CPUCores  int
	GPUCount  int
	GPUType   string
	RAMGB     int
	StorageGB int
}

func (r Resources) Validate() error {
	if r.CPUCores < MinCPUCores || r.CPUCores > MaxCPUCores {
		return ErrInvalidCPUCores
	}
	if r.GPUCount < MinGPUCount || r.GPUCount > MaxGPUCount {
		return ErrInvalidGPUCount
	}
	if r.RAMGB < MinRAMGB || r.RAMGB > MaxRAMGB {
		return ErrInvalidRAM
	}
	if r.StorageGB < MinStorageGB || r.StorageGB > MaxStorageGB {
		return ErrInvalidStorage
	}
	return nil
}

func validatePrice(p decimal.Decimal) error {
	if p.LessThan(MinPricePerHour) || p.GreaterThan(MaxPricePerHour) {
		return ErrInvalidPrice
	}
	return nil
}

type DemandStatus string

const (
	DemandActive    DemandStatus = "active"
	DemandMatched   DemandStatus = "matched"
	DemandCompleted DemandStatus = "completed"
	DemandCancelled DemandStatus = "cancelled"
)

func ParseDemandStatus(s string) (DemandStatus, error) {
	st := DemandStatus(s)
	switch st {
	case DemandActive, DemandMatched, DemandCompleted, DemandCancelled:
		return st, nil
	}
	return "", ErrInvalidDemandStatus
}

func (s DemandStatus) String() string { return string(s) }

type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchActive    MatchStatus = "active"
	MatchCompleted MatchStatus = "completed"
	MatchCancelled MatchStatus = "cancelled"
)

func ParseMatchStatus(s string) (MatchStatus, error) {
	st := MatchStatus(s)
	switch st {
	case MatchPending, MatchActive, MatchCompleted, MatchCancelled:
		return st, nil
	}
	return "", ErrInvalidMatchStatus
}

func (s MatchStatus) String() string { return string(s) }

// Terminal statuses accept no further transitions.
func (s MatchStatus) Terminal() bool {
	return s == MatchCompleted || s == MatchCancelled
}

type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxConfirmed TransactionStatus = "confirmed"
	TxFailed    TransactionStatus = "failed"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	st := TransactionStatus(s)
	switch st {
	case TxPending, TxConfirmed, TxFailed:
		return st, nil
	}
	return "", ErrInvalidTxStatus
}

func (s TransactionStatus) String() string { return string(s) }

const DefaultToken = "USDC"
