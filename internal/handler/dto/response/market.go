package response

import (
	"time"

	"compute-market/internal/domain/market"
	"compute-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type SupplyOfferResponse struct {
	ID            uuid.UUID       `json:"id"`
	WalletAddress string          `json:"walletAddress"`
	CPUCores      int             `json:"cpuCores"`
	GPUCount      int             `json:"gpuCount"`
	GPUType       string          `json:"gpuType,omitempty"`
	RAMGB         int             `json:"ramGB"`
	StorageGB     int             `json:"storageGB"`
	PricePerHour  decimal.Decimal `json:"pricePerHour" swaggertype:"number"`
	Available     bool            `json:"available"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type DemandRequestResponse struct {
	ID              uuid.UUID       `json:"id"`
	WalletAddress   string          `json:"walletAddress"`
	CPUCores        int             `json:"cpuCores"`
	GPUCount        int             `json:"gpuCount"`
	GPUType         string          `json:"gpuType,omitempty"`
	RAMGB           int             `json:"ramGB"`
	StorageGB       int             `json:"storageGB"`
	MaxPricePerHour decimal.Decimal `json:"maxPricePerHour" swaggertype:"number"`
	Duration        int             `json:"duration"`
	JobDescription  string          `json:"jobDescription,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type MatchResponse struct {
	ID              uuid.UUID             `json:"id"`
	SupplyOfferID   uuid.UUID             `json:"supplyOfferId"`
	DemandRequestID uuid.UUID             `json:"demandRequestId"`
	AgreedPrice     decimal.Decimal       `json:"agreedPrice" swaggertype:"number"`
	Status          string                `json:"status"`
	TxHash          string                `json:"txHash,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	SupplyOffer     SupplyOfferResponse   `json:"supplyOffer"`
	DemandRequest   DemandRequestResponse `json:"demandRequest"`
}

type CandidateResponse struct {
	SupplyOffer SupplyOfferResponse `json:"supplyOffer"`
	Score       float64             `json:"score"`
	Reasons     []string            `json:"reasons"`
}

type TransactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	MatchID   uuid.UUID       `json:"matchId"`
	TxHash    string          `json:"txHash"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
	Token     string          `json:"token"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionListItemResponse adds the match context shown in transaction history.
type TransactionListItemResponse struct {
	TransactionResponse
	MatchStatus    string          `json:"matchStatus"`
	AgreedPrice    decimal.Decimal `json:"agreedPrice" swaggertype:"number"`
	SupplierWallet string          `json:"supplierWallet"`
	BuyerWallet    string          `json:"buyerWallet"`
}

type PaginationResponse struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type TransactionListResponse struct {
	Transactions []*TransactionListItemResponse `json:"transactions"`
	Pagination   PaginationResponse             `json:"pagination"`
}

type USDCBalanceResponse struct {
	WalletAddress string          `json:"walletAddress"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number"`
	Token         string          `json:"token"`
	Contract      string          `json:"contract"`
}

func FromSupplyOfferView(v *queries.SupplyOfferView) *SupplyOfferResponse {
	var res SupplyOfferResponse
	mustCopy(&res, v)
	return &res
}

func FromSupplyOfferViews(views []*queries.SupplyOfferView) []*SupplyOfferResponse {
	res := make([]*SupplyOfferResponse, len(views))
	for i, v := range views {
		res[i] = FromSupplyOfferView(v)
	}
	return res
}

func FromDemandRequestView(v *queries.DemandRequestView) *DemandRequestResponse {
	var res DemandRequestResponse
	mustCopy(&res, v)
	return &res
}

func FromDemandRequestViews(views []*queries.DemandRequestView) []*DemandRequestResponse {
	res := make([]*DemandRequestResponse, len(views))
	for i, v := range views {
		res[i] = FromDemandRequestView(v)
	}
	return res
}

func FromMatchView(v *queries.MatchView) *MatchResponse {
	res := MatchResponse{
		SupplyOffer:   *FromSupplyOfferView(&v.SupplyOffer),
		DemandRequest: *FromDemandRequestView(&v.DemandRequest),
	}
	res.ID = v.ID
	res.SupplyOfferID = v.SupplyOfferID
	res.DemandRequestID = v.DemandRequestID
	res.AgreedPrice = v.AgreedPrice
	res.Status = v.Status
	res.TxHash = v.TxHash
	res.CreatedAt = v.CreatedAt
	res.UpdatedAt = v.UpdatedAt
	return &res
}

func FromMatchViews(views []*queries.MatchView) []*MatchResponse {
	res := make([]*MatchResponse, len(views))
	for i, v := range views {
		res[i] = FromMatchView(v)
	}
	return res
}

func FromCandidateViews(views []*queries.CandidateView) []*CandidateResponse {
	res := make([]*CandidateResponse, len(views))
	for i, v := range views {
		res[i] = &CandidateResponse{
			SupplyOffer: *FromSupplyOfferView(&v.SupplyOffer),
			Score:       v.Score,
			Reasons:     v.Reasons,
		}
	}
	return res
}

func FromTransaction(t *market.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		MatchID:   t.MatchID,
		TxHash:    t.TxHash,
		Amount:    t.Amount,
		Token:     t.Token,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func FromTransactionPage(p *queries.TransactionPage) *TransactionListResponse {
	items := make([]*TransactionListItemResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = &TransactionListItemResponse{
			TransactionResponse: TransactionResponse{
				ID:        v.ID,
				MatchID:   v.MatchID,
				TxHash:    v.TxHash,
				Amount:    v.Amount,
				Token:     v.Token,
				Status:    v.Status,
				CreatedAt: v.CreatedAt,
			},
			MatchStatus:    v.MatchStatus,
			AgreedPrice:    v.AgreedPrice,
			SupplierWallet: v.SupplierWallet,
			BuyerWallet:    v.BuyerWallet,
		}
	}

	res := &TransactionListResponse{Transactions: items}
	mustCopy(&res.Pagination, &p.Pagination)
	return res
}

func FromUSDCBalanceView(v *queries.USDCBalanceView) *USDCBalanceResponse {
	var res USDCBalanceResponse
	mustCopy(&res, v)
	return &res
}

// mustCopy copies between view and response structs whose fields line up by name.
// A failure here is a programming error in the struct definitions.
func mustCopy(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(err)
	}
}
