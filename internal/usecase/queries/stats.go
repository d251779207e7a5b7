package queries

import (
	"context"
	"math"
	"time"

	"compute-market/internal/pkg/clock"
)

const recentWindow = 24 * time.Hour

type StatsReadStore interface {
	Snapshot(ctx context.Context, since time.Time) (*MarketStatsSnapshot, error)
}

type StatsQueries interface {
	Get(ctx context.Context) (*MarketStats, error)
}

type statsQueriesImpl struct {
	readStore StatsReadStore
	clock     clock.Clock
}

func NewStatsQueries(readStore StatsReadStore, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{
		readStore: readStore,
		clock:     clk,
	}
}

func (q *statsQueriesImpl) Get(ctx context.Context) (*MarketStats, error) {
	now := q.clock.Now()
	snap, err := q.readStore.Snapshot(ctx, now.Add(-recentWindow))
	if err != nil {
		return nil, err
	}
	return BuildMarketStats(snap, now), nil
}

// BuildMarketStats derives the marketplace indicators from raw aggregates.
// Utilization is matches per available offer as a percentage, 0 without supply.
func BuildMarketStats(snap *MarketStatsSnapshot, now time.Time) *MarketStats {
	utilization := 0.0
	if snap.SupplyAvailable > 0 {
		utilization = roundTo(float64(snap.MatchTotal)/float64(snap.SupplyAvailable)*100, 2)
	}
	health := NetworkLowActivity
	if snap.SupplyAvailable > 0 && snap.DemandActive > 0 {
		health = NetworkHealthy
	}

	return &MarketStats{
		Supply: SupplyStats{
			Total:        snap.SupplyTotal,
			Available:    snap.SupplyAvailable,
			Recent24h:    snap.SupplyRecent,
			AveragePrice: snap.SupplyAveragePrice.Round(6),
		},
		Demand: DemandStats{
			Total:           snap.DemandTotal,
			Active:          snap.DemandActive,
			Recent24h:       snap.DemandRecent,
			AverageMaxPrice: snap.DemandAverageMaxPrice.Round(6),
		},
		Matches: MatchStats{
			Total:                   snap.MatchTotal,
			Recent24h:               snap.MatchRecent,
			AverageMatchTimeSeconds: roundTo(snap.AverageMatchSeconds, 2),
		},
		Transactions: TransactionStats{
			Confirmed: snap.TransactionConfirmed,
			Volume:    snap.TransactionVolume,
		},
		Marketplace: MarketplaceStats{
			UtilizationRate: utilization,
			NetworkHealth:   health,
		},
		GeneratedAt: now,
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
