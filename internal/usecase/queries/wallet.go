package queries

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/domain/settlement"

	"github.com/shopspring/decimal"
)

type BalanceReader interface {
	USDCBalance(ctx context.Context, wallet string) (decimal.Decimal, error)
	ContractAddress() string
}

type WalletQueries interface {
	USDCBalance(ctx context.Context, wallet string) (*USDCBalanceView, error)
}

type walletQueriesImpl struct {
	reader BalanceReader
}

func NewWalletQueries(reader BalanceReader) WalletQueries {
	return &walletQueriesImpl{reader: reader}
}

func (q *walletQueriesImpl) USDCBalance(ctx context.Context, wallet string) (*USDCBalanceView, error) {
	addr, err := settlement.NormalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	balance, err := q.reader.USDCBalance(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &USDCBalanceView{
		WalletAddress: addr,
		Balance:       balance,
		Token:         market.DefaultToken,
		Contract:      q.reader.ContractAddress(),
	}, nil
}
