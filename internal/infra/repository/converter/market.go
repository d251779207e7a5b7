package converter

import (
	"compute-market/internal/domain/market"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/pkg/pgconv"
)

func SupplyOfferToCreateParams(o *market.SupplyOffer) sqlc.CreateSupplyOfferParams {
	return sqlc.CreateSupplyOfferParams{
		ID:            o.ID,
		WalletAddress: o.WalletAddress,
		CpuCores:      pgconv.IntToInt32(o.CPUCores),
		GpuCount:      pgconv.IntToInt32(o.GPUCount),
		GpuType:       pgconv.StringToPgtype(o.GPUType),
		RamGb:         pgconv.IntToInt32(o.RAMGB),
		StorageGb:     pgconv.IntToInt32(o.StorageGB),
		PricePerHour:  pgconv.NumericFromDecimal(o.PricePerHour),
		Available:     o.Available,
		Location:      pgconv.StringToPgtype(o.Location),
		CreatedAt:     pgconv.TimeToPgtype(o.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(o.UpdatedAt),
	}
}

func SupplyOfferToUpdateParams(o *market.SupplyOffer) sqlc.UpdateSupplyOfferParams {
	return sqlc.UpdateSupplyOfferParams{
		ID:           o.ID,
		PricePerHour: pgconv.NumericFromDecimal(o.PricePerHour),
		Available:    o.Available,
		Location:     pgconv.StringToPgtype(o.Location),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt),
	}
}

func SupplyOfferFromRow(row sqlc.SupplyOffers) (*market.SupplyOffer, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerHour)
	if err != nil {
		return nil, errs.Wrap(err, "supply_offers.price_per_hour")
	}
	return &market.SupplyOffer{
		ID:            row.ID,
		WalletAddress: row.WalletAddress,
		Resources: market.Resources{
			CPUCores:  int(row.CpuCores),
			GPUCount:  int(row.GpuCount),
			GPUType:   pgconv.StringFromPgtype(row.GpuType),
			RAMGB:     int(row.RamGb),
			StorageGB: int(row.StorageGb),
		},
		PricePerHour: price,
		Available:    row.Available,
		Location:     pgconv.StringFromPgtype(row.Location),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func DemandRequestToCreateParams(d *market.DemandRequest) sqlc.CreateDemandRequestParams {
	return sqlc.CreateDemandRequestParams{
		ID:              d.ID,
		WalletAddress:   d.WalletAddress,
		CpuCores:        pgconv.IntToInt32(d.CPUCores),
		GpuCount:        pgconv.IntToInt32(d.GPUCount),
		GpuType:         pgconv.StringToPgtype(d.GPUType),
		RamGb:           pgconv.IntToInt32(d.RAMGB),
		StorageGb:       pgconv.IntToInt32(d.StorageGB),
		MaxPricePerHour: pgconv.NumericFromDecimal(d.MaxPricePerHour),
		DurationHours:   pgconv.IntToInt32(d.DurationHours),
		JobDescription:  pgconv.StringToPgtype(d.JobDescription),
		Status:          d.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(d.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt),
	}
}

func DemandRequestToUpdateParams(d *market.DemandRequest) sqlc.UpdateDemandRequestParams {
	return sqlc.UpdateDemandRequestParams{
		ID:              d.ID,
		MaxPricePerHour: pgconv.NumericFromDecimal(d.MaxPricePerHour),
		Status:          d.Status.String(),
		UpdatedAt:       pgconv.TimeToPgtype(d.UpdatedAt),
	}
}

func DemandRequestFromRow(row sqlc.DemandRequests) (*market.DemandRequest, error) {
	maxPrice, err := pgconv.DecimalFromNumeric(row.MaxPricePerHour)
	if err != nil {
		return nil, errs.Wrap(err, "demand_requests.max_price_per_hour")
	}
	status, err := market.ParseDemandStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "demand_requests.status %q", row.Status)
	}
	return &market.DemandRequest{
		ID:            row.ID,
		WalletAddress: row.WalletAddress,
		Resources: market.Resources{
			CPUCores:  int(row.CpuCores),
			GPUCount:  int(row.GpuCount),
			GPUType:   pgconv.StringFromPgtype(row.GpuType),
			RAMGB:     int(row.RamGb),
			StorageGB: int(row.StorageGb),
		},
		MaxPricePerHour: maxPrice,
		DurationHours:   int(row.DurationHours),
		JobDescription:  pgconv.StringFromPgtype(row.JobDescription),
		Status:          status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func MatchToCreateParams(m *market.Match) sqlc.CreateMatchParams {
	return sqlc.CreateMatchParams{
		ID:              m.ID,
		SupplyOfferID:   m.SupplyOfferID,
		DemandRequestID: m.DemandRequestID,
		AgreedPrice:     pgconv.NumericFromDecimal(m.AgreedPrice),
		Status:          m.Status.String(),
		TxHash:          pgconv.StringToPgtype(m.TxHash),
		CreatedAt:       pgconv.TimeToPgtype(m.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(m.UpdatedAt),
	}
}

func MatchToUpdateParams(m *market.Match) sqlc.UpdateMatchParams {
	return sqlc.UpdateMatchParams{
		ID:        m.ID,
		Status:    m.Status.String(),
		TxHash:    pgconv.StringToPgtype(m.TxHash),
		UpdatedAt: pgconv.TimeToPgtype(m.UpdatedAt),
	}
}

func MatchFromRow(row sqlc.Matches) (*market.Match, error) {
	price, err := pgconv.DecimalFromNumeric(row.AgreedPrice)
	if err != nil {
		return nil, errs.Wrap(err, "matches.agreed_price")
	}
	status, err := market.ParseMatchStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "matches.status %q", row.Status)
	}
	return &market.Match{
		ID:              row.ID,
		SupplyOfferID:   row.SupplyOfferID,
		DemandRequestID: row.DemandRequestID,
		AgreedPrice:     price,
		Status:          status,
		TxHash:          pgconv.StringFromPgtype(row.TxHash),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func TransactionToCreateParams(t *market.Transaction) sqlc.CreateTransactionParams {
	return sqlc.CreateTransactionParams{
		ID:        t.ID,
		MatchID:   t.MatchID,
		TxHash:    t.TxHash,
		Amount:    pgconv.NumericFromDecimal(t.Amount),
		Token:     t.Token,
		Status:    t.Status.String(),
		CreatedAt: pgconv.TimeToPgtype(t.CreatedAt),
	}
}

func TransactionFromRow(row sqlc.Transactions) (*market.Transaction, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "transactions.amount")
	}
	status, err := market.ParseTransactionStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "transactions.status %q", row.Status)
	}
	return &market.Transaction{
		ID:        row.ID,
		MatchID:   row.MatchID,
		TxHash:    row.TxHash,
		Amount:    amount,
		Token:     row.Token,
		Status:    status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
