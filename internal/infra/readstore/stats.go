package readstore

import (
	"context"
	"time"

	"compute-market/internal/infra"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatsReadQueries interface {
	GetMarketStats(ctx context.Context, db sqlc.DBTX, since pgtype.Timestamptz) (sqlc.GetMarketStatsRow, error)
}

type StatsReadStore struct {
	queries StatsReadQueries
	db      sqlc.DBTX
}

func NewStatsReadStore(queries StatsReadQueries, db sqlc.DBTX) *StatsReadStore {
	return &StatsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StatsReadStore) Snapshot(ctx context.Context, since time.Time) (*queries.MarketStatsSnapshot, error) {
	row, err := r.queries.GetMarketStats(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get market stats", err)
	}

	supplyAvg, err := pgconv.DecimalFromNumeric(row.SupplyAveragePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode average supply price", err, infra.KindDBFailure)
	}
	demandAvg, err := pgconv.DecimalFromNumeric(row.DemandAverageMaxPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode average demand price", err, infra.KindDBFailure)
	}
	volume, err := pgconv.DecimalFromNumeric(row.TransactionVolume)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transaction volume", err, infra.KindDBFailure)
	}

	return &queries.MarketStatsSnapshot{
		SupplyTotal:           row.SupplyTotal,
		SupplyAvailable:       row.SupplyAvailable,
		SupplyRecent:          row.SupplyRecent,
		SupplyAveragePrice:    supplyAvg,
		DemandTotal:           row.DemandTotal,
		DemandActive:          row.DemandActive,
		DemandRecent:          row.DemandRecent,
		DemandAverageMaxPrice: demandAvg,
		MatchTotal:            row.MatchTotal,
		MatchRecent:           row.MatchRecent,
		AverageMatchSeconds:   row.AverageMatchSeconds,
		TransactionConfirmed:  row.TransactionConfirmed,
		TransactionVolume:     volume,
	}, nil
}
