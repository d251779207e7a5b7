package commands

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/clock"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"
)

type TransactionCommands interface {
	// Record stores a settlement transaction reported by a party to the match.
	Record(ctx context.Context, params market.NewTransactionParams, wallet string) (*market.Transaction, error)
}

type transactionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTransactionCommands(uow shared.UnitOfWork, clk clock.Clock) TransactionCommands {
	return &transactionCommandsImpl{uow: uow, clock: clk}
}

func (uc *transactionCommandsImpl) Record(ctx context.Context, params market.NewTransactionParams, wallet string) (*market.Transaction, error) {
	t, err := market.NewTransaction(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Matches().FindForUpdate(ctx, tx.DB(), t.MatchID)
		if err != nil {
			return notFoundAs(err, errs.ErrMatchNotFound)
		}
		offer, err := tx.SupplyOffers().FindForUpdate(ctx, tx.DB(), m.SupplyOfferID)
		if err != nil {
			return err
		}
		demand, err := tx.DemandRequests().FindForUpdate(ctx, tx.DB(), m.DemandRequestID)
		if err != nil {
			return err
		}
		if !m.InvolvesWallet(wallet, offer, demand) {
			return errs.ErrNotMatchParty
		}
		if m.Status == market.MatchCancelled {
			return errs.ErrMatchCancelled
		}

		existing, err := tx.Reads().TransactionByHash(ctx, t.TxHash)
		switch {
		case err == nil && existing != nil:
			return errs.ErrDuplicateTransaction
		case err != nil && !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateTransaction
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
