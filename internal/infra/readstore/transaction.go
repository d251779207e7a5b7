package readstore

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/infra/repository/converter"
	sqlc "compute-market/internal/infra/sqlc/generated"
	"compute-market/internal/pkg/pgconv"
	"compute-market/internal/usecase/queries"
	"compute-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionReadQueries interface {
	GetTransactionByHash(ctx context.Context, db sqlc.DBTX, txHash string) (sqlc.Transactions, error)
	ListPendingSettlements(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListPendingSettlementsRow, error)
	ListTransactionViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionViewsParams) ([]sqlc.ListTransactionViewsRow, error)
	CountTransactionViews(ctx context.Context, db sqlc.DBTX, wallet pgtype.Text) (int64, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) List(ctx context.Context, wallet string, limit, offset int32) ([]*queries.TransactionView, error) {
	params := sqlc.ListTransactionViewsParams{
		Wallet:     pgconv.StringToPgtype(wallet),
		PageLimit:  limit,
		PageOffset: offset,
	}
	rows, err := r.queries.ListTransactionViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	views := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		view, err := toTransactionView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode transaction", err, infra.KindDBFailure)
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *TransactionReadStore) Count(ctx context.Context, wallet string) (int64, error) {
	n, err := r.queries.CountTransactionViews(ctx, r.db, pgconv.StringToPgtype(wallet))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count transactions", err)
	}
	return n, nil
}

func (r *TransactionReadStore) FindByHash(ctx context.Context, txHash string) (*market.Transaction, error) {
	row, err := r.queries.GetTransactionByHash(ctx, r.db, txHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get transaction by hash", err)
	}
	t, err := converter.TransactionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode transaction", err, infra.KindDBFailure)
	}
	return t, nil
}

// PendingSettlements returns the oldest pending transactions with the
// transfer each one is expected to contain: buyer pays supplier the amount.
func (r *TransactionReadStore) PendingSettlements(ctx context.Context, limit int32) ([]shared.PendingSettlement, error) {
	rows, err := r.queries.ListPendingSettlements(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending settlements", err)
	}
	pending := make([]shared.PendingSettlement, 0, len(rows))
	for _, row := range rows {
		t, err := converter.TransactionFromRow(row.Transactions)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode transaction", err, infra.KindDBFailure)
		}
		pending = append(pending, shared.PendingSettlement{
			TransactionID: t.ID,
			MatchID:       t.MatchID,
			Expectation: shared.SettlementExpectation{
				TxHash: t.TxHash,
				Payer:  row.BuyerWallet,
				Payee:  row.SupplierWallet,
				Amount: t.Amount,
			},
		})
	}
	return pending, nil
}
