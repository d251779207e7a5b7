package commands

import (
	"context"
	"log/slog"

	"compute-market/internal/domain/market"
	"compute-market/internal/usecase/shared"
)

type ReconcileResult struct {
	Checked   int
	Confirmed int
	Failed    int
}

type SettlementCommands interface {
	// ReconcilePending re-verifies up to batchSize pending transactions and
	// stores every status that is no longer pending.
	ReconcilePending(ctx context.Context, batchSize int32) (*ReconcileResult, error)
}

type settlementCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier shared.SettlementVerifier
}

func NewSettlementCommands(uow shared.UnitOfWork, verifier shared.SettlementVerifier) SettlementCommands {
	return &settlementCommandsImpl{
		uow:      uow,
		verifier: verifier,
	}
}

func (uc *settlementCommandsImpl) ReconcilePending(ctx context.Context, batchSize int32) (*ReconcileResult, error) {
	pending, err := uc.uow.CommandReads().PendingSettlements(ctx, batchSize)
	if err != nil {
		return nil, err
	}

	result := &ReconcileResult{}
	for _, p := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		result.Checked++

		status, err := uc.verifier.Verify(ctx, p.Expectation)
		if err != nil {
			slog.Warn("settlement verification failed",
				"transaction_id", p.TransactionID.String(),
				"tx_hash", p.Expectation.TxHash,
				"error", err.Error())
			continue
		}
		if status == market.TxPending {
			continue
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Transactions().UpdateStatus(ctx, tx.DB(), p.TransactionID, status)
		})
		if err != nil {
			slog.Error("failed to store settlement status",
				"transaction_id", p.TransactionID.String(),
				"status", status.String(),
				"error", err.Error())
			continue
		}

		switch status {
		case market.TxConfirmed:
			result.Confirmed++
		case market.TxFailed:
			result.Failed++
		}
	}
	return result, nil
}
