package readstore

import (
	"compute-market/internal/domain/market"
	"compute-market/internal/infra/repository/converter"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/usecase/queries"
)

func toSupplyOfferView(row sqlc.SupplyOffers) (*queries.SupplyOfferView, error) {
	offer, err := converter.SupplyOfferFromRow(row)
	if err != nil {
		return nil, err
	}
	view := queries.SupplyOfferViewFromDomain(*offer)
	return &view, nil
}

func toDemandRequestView(row sqlc.DemandRequests) (*queries.DemandRequestView, error) {
	demand, err := converter.DemandRequestFromRow(row)
	if err != nil {
		return nil, err
	}
	return demandRequestViewFromDomain(demand), nil
}

func demandRequestViewFromDomain(d *market.DemandRequest) *queries.DemandRequestView {
	return &queries.DemandRequestView{
		ID:              d.ID,
		WalletAddress:   d.WalletAddress,
		CPUCores:        d.CPUCores,
		GPUCount:        d.GPUCount,
		GPUType:         d.GPUType,
		RAMGB:           d.RAMGB,
		StorageGB:       d.StorageGB,
		MaxPricePerHour: d.MaxPricePerHour,
		Duration:        d.DurationHours,
		JobDescription:  d.JobDescription,
		Status:          d.Status.String(),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toMatchView(m sqlc.Matches, s sqlc.SupplyOffers, d sqlc.DemandRequests) (*queries.MatchView, error) {
	match, err := converter.MatchFromRow(m)
	if err != nil {
		return nil, err
	}
	supply, err := toSupplyOfferView(s)
	if err != nil {
		return nil, err
	}
	demand, err := toDemandRequestView(d)
	if err != nil {
		return nil, err
	}
	return &queries.MatchView{
		ID:              match.ID,
		SupplyOfferID:   match.SupplyOfferID,
		DemandRequestID: match.DemandRequestID,
		AgreedPrice:     match.AgreedPrice,
		Status:          match.Status.String(),
		TxHash:          match.TxHash,
		CreatedAt:       match.CreatedAt,
		UpdatedAt:       match.UpdatedAt,
		SupplyOffer:     *supply,
		DemandRequest:   *demand,
	}, nil
}

func toTransactionView(row sqlc.ListTransactionViewsRow) (*queries.TransactionView, error) {
	t, err := converter.TransactionFromRow(row.Transactions)
	if err != nil {
		return nil, err
	}
	m, err := converter.MatchFromRow(row.Matches)
	if err != nil {
		return nil, err
	}
	return &queries.TransactionView{
		ID:             t.ID,
		MatchID:        t.MatchID,
		TxHash:         t.TxHash,
		Amount:         t.Amount,
		Token:          t.Token,
		Status:         t.Status.String(),
		CreatedAt:      t.CreatedAt,
		MatchStatus:    m.Status.String(),
		AgreedPrice:    m.AgreedPrice,
		SupplierWallet: row.SupplierWallet,
		BuyerWallet:    row.BuyerWallet,
	}, nil
}
