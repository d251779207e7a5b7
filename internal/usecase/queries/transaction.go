package queries

import (
	"context"

	"compute-market/internal/domain/settlement"
	"compute-market/internal/pkg/pgconv"
)

type TransactionReadStore interface {
	// List and Count match transactions where wallet is either party; an empty wallet matches all.
	List(ctx context.Context, wallet string, limit, offset int32) ([]*TransactionView, error)
	Count(ctx context.Context, wallet string) (int64, error)
}

type TransactionQueries interface {
	List(ctx context.Context, filter TransactionFilter) (*TransactionPage, error)
}

type transactionQueriesImpl struct {
	readStore TransactionReadStore
}

func NewTransactionQueries(readStore TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{readStore: readStore}
}

func (q *transactionQueriesImpl) List(ctx context.Context, filter TransactionFilter) (*TransactionPage, error) {
	wallet := ""
	if filter.WalletAddress != "" {
		normalized, err := settlement.NormalizeAddress(filter.WalletAddress)
		if err != nil {
			return nil, err
		}
		wallet = normalized
	}
	limit := ValidatePageSize(filter.Limit)
	offset := max(filter.Offset, 0)

	items, err := q.readStore.List(ctx, wallet, pgconv.IntToInt32(limit), pgconv.IntToInt32(offset))
	if err != nil {
		return nil, err
	}
	total, err := q.readStore.Count(ctx, wallet)
	if err != nil {
		return nil, err
	}

	return &TransactionPage{
		Items: items,
		Pagination: Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+len(items)) < total,
		},
	}, nil
}

func ValidatePageSize(limit int) int {
	if limit <= 0 {
		return DefaultTransactionPageSize
	}
	if limit > MaxTransactionPageSize {
		return MaxTransactionPageSize
	}
	return limit
}
