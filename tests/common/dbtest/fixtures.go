//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"compute-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertSupplyOffer stores the builder's offer directly, bypassing the API.
func InsertSupplyOffer(t *testing.T, db DBLike, b *builder.SupplyOfferBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO supply_offers
		    (id, wallet_address, cpu_cores, gpu_count, gpu_type, ram_gb, storage_gb, price_per_hour, available, location)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''))`,
		b.ID, b.WalletAddress, b.CPUCores, b.GPUCount, b.GPUType, b.RAMGB, b.StorageGB,
		b.PricePerHour.String(), b.Available, b.Location)
	require.NoError(t, err)
	return b.ID
}

// InsertDemandRequest stores the builder's request directly, bypassing the API.
func InsertDemandRequest(t *testing.T, db DBLike, b *builder.DemandRequestBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO demand_requests
		    (id, wallet_address, cpu_cores, gpu_count, gpu_type, ram_gb, storage_gb, max_price_per_hour, duration_hours, job_description, status)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''), $11)`,
		b.ID, b.WalletAddress, b.CPUCores, b.GPUCount, b.GPUType, b.RAMGB, b.StorageGB,
		b.MaxPricePerHour.String(), b.DurationHours, b.JobDescription, string(b.Status))
	require.NoError(t, err)
	return b.ID
}

func SupplyAvailable(t *testing.T, db DBLike, id uuid.UUID) bool {
	t.Helper()
	var available bool
	err := db.QueryRow(context.Background(), "SELECT available FROM supply_offers WHERE id = $1", id).Scan(&available)
	require.NoError(t, err)
	return available
}

func DemandStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM demand_requests WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions', 'schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
