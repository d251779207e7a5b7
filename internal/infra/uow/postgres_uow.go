package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra/readstore"
	"compute-market/internal/infra/repository"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Writers lock the rows they change with FOR UPDATE, so ReadCommitted is used.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt rolls back explicitly; deferring inside the loop would hold connections until return.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	supplyOfferRepo   shared.SupplyOfferRepository
	demandRequestRepo shared.DemandRequestRepository
	matchRepo         shared.MatchRepository
	transactionRepo   shared.TransactionRepository
	authNonceRepo     shared.AuthNonceRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) SupplyOffers() shared.SupplyOfferRepository {
	if t.supplyOfferRepo == nil {
		t.supplyOfferRepo = repository.NewSupplyOfferRepository(t.uow.q, t.dbtx)
	}
	return t.supplyOfferRepo
}

func (t *pgTx) DemandRequests() shared.DemandRequestRepository {
	if t.demandRequestRepo == nil {
		t.demandRequestRepo = repository.NewDemandRequestRepository(t.uow.q, t.dbtx)
	}
	return t.demandRequestRepo
}

func (t *pgTx) Matches() shared.MatchRepository {
	if t.matchRepo == nil {
		t.matchRepo = repository.NewMatchRepository(t.uow.q, t.dbtx)
	}
	return t.matchRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q, t.dbtx)
	}
	return t.transactionRepo
}

func (t *pgTx) AuthNonces() shared.AuthNonceRepository {
	if t.authNonceRepo == nil {
		t.authNonceRepo = repository.NewAuthNonceRepository(t.uow.q, t.dbtx)
	}
	return t.authNonceRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads runs on the surrounding transaction when there is one, so
// reads observe the rows the same transaction has already written.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	supplyStore      *readstore.SupplyOfferReadStore
	demandStore      *readstore.DemandRequestReadStore
	transactionStore *readstore.TransactionReadStore
}

func (r *commandReads) supplies() *readstore.SupplyOfferReadStore {
	if r.supplyStore == nil {
		r.supplyStore = readstore.NewSupplyOfferReadStore(r.uow.q, r.dbtx)
	}
	return r.supplyStore
}

func (r *commandReads) demands() *readstore.DemandRequestReadStore {
	if r.demandStore == nil {
		r.demandStore = readstore.NewDemandRequestReadStore(r.uow.q, r.dbtx)
	}
	return r.demandStore
}

func (r *commandReads) transactions() *readstore.TransactionReadStore {
	if r.transactionStore == nil {
		r.transactionStore = readstore.NewTransactionReadStore(r.uow.q, r.dbtx)
	}
	return r.transactionStore
}

func (r *commandReads) DemandRequestByID(ctx context.Context, id uuid.UUID) (*market.DemandRequest, error) {
	return r.demands().FindRecordByID(ctx, id)
}

func (r *commandReads) AvailableSupplyOffers(ctx context.Context) ([]market.SupplyOffer, error) {
	return r.supplies().ListAvailable(ctx)
}

func (r *commandReads) TransactionByHash(ctx context.Context, txHash string) (*market.Transaction, error) {
	return r.transactions().FindByHash(ctx, txHash)
}

func (r *commandReads) PendingSettlements(ctx context.Context, limit int32) ([]shared.PendingSettlement, error) {
	return r.transactions().PendingSettlements(ctx, limit)
}
