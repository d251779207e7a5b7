package commands

import (
	"context"
	"log/slog"

	"compute-market/internal/domain/market"
	"compute-market/internal/domain/matching"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/clock"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type MatchCommands interface {
	// Create pairs an offer with a request owned by wallet.
	Create(ctx context.Context, supplyOfferID, demandRequestID uuid.UUID, wallet string) (*CreateResult, error)
	// AutoMatch pairs a request with the cheapest offer meeting every hard constraint.
	AutoMatch(ctx context.Context, demandRequestID uuid.UUID, wallet string) (*CreateResult, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateMatchInput, wallet string) error
	Delete(ctx context.Context, id uuid.UUID, wallet string) error
}

type matchCommandsImpl struct {
	uow      shared.UnitOfWork
	verifier shared.SettlementVerifier
	clock    clock.Clock
}

func NewMatchCommands(uow shared.UnitOfWork, verifier shared.SettlementVerifier, clk clock.Clock) MatchCommands {
	return &matchCommandsImpl{
		uow:      uow,
		verifier: verifier,
		clock:    clk,
	}
}

func (uc *matchCommandsImpl) Create(ctx context.Context, supplyOfferID, demandRequestID uuid.UUID, wallet string) (*CreateResult, error) {
	var created uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := uc.pair(ctx, tx, supplyOfferID, demandRequestID, wallet)
		created = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return &CreateResult{ID: created}, nil
}

func (uc *matchCommandsImpl) AutoMatch(ctx context.Context, demandRequestID uuid.UUID, wallet string) (*CreateResult, error) {
	var created uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		demand, err := tx.Reads().DemandRequestByID(ctx, demandRequestID)
		if err != nil {
			return notFoundAs(err, errs.ErrDemandRequestNotFound)
		}
		if !demand.OwnedBy(wallet) {
			return errs.ErrNotOwner
		}

		pool, err := tx.Reads().AvailableSupplyOffers(ctx)
		if err != nil {
			return err
		}
		// Own offers and GPU type conflicts would be refused by pair, so they
		// never reach the selection.
		candidates := pool[:0:0]
		for _, offer := range pool {
			if offer.OwnedBy(demand.WalletAddress) || matching.GPUTypeConflict(*demand, offer) {
				continue
			}
			candidates = append(candidates, offer)
		}

		chosen, ok := matching.SelectSingleMatch(*demand, candidates)
		if !ok {
			return errs.ErrNoCompatibleOffer
		}

		id, err := uc.pair(ctx, tx, chosen.ID, demand.ID, wallet)
		created = id
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("demand request auto-matched",
		"demand_request_id", demandRequestID.String(),
		"match_id", created.String())
	return &CreateResult{ID: created}, nil
}

// pair locks the offer and then the request, re-checks both under the lock,
// and persists the match with both reservations.
func (uc *matchCommandsImpl) pair(ctx context.Context, tx shared.Tx, supplyOfferID, demandRequestID uuid.UUID, wallet string) (uuid.UUID, error) {
	offer, err := tx.SupplyOffers().FindForUpdate(ctx, tx.DB(), supplyOfferID)
	if err != nil {
		return uuid.Nil, notFoundAs(err, errs.ErrSupplyOfferNotFound)
	}
	demand, err := tx.DemandRequests().FindForUpdate(ctx, tx.DB(), demandRequestID)
	if err != nil {
		return uuid.Nil, notFoundAs(err, errs.ErrDemandRequestNotFound)
	}
	if !demand.OwnedBy(wallet) {
		return uuid.Nil, errs.ErrNotOwner
	}
	if matching.GPUTypeConflict(*demand, *offer) {
		return uuid.Nil, errs.ErrGPUTypeMismatch
	}

	m, err := market.Pair(offer, demand, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	if err := tx.Matches().Create(ctx, tx.DB(), m); err != nil {
		return uuid.Nil, err
	}
	if err := tx.SupplyOffers().Update(ctx, tx.DB(), offer); err != nil {
		return uuid.Nil, err
	}
	if err := tx.DemandRequests().Update(ctx, tx.DB(), demand); err != nil {
		return uuid.Nil, err
	}
	return m.ID, nil
}

func (uc *matchCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateMatchInput, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, offer, demand, err := uc.lockMatch(ctx, tx, id, wallet)
		if err != nil {
			return err
		}
		now := uc.clock.Now()

		sidesChanged := false
		if in.Status != nil && *in.Status != m.Status {
			if err := m.TransitionTo(*in.Status, offer, demand, now); err != nil {
				return err
			}
			sidesChanged = true
		}

		if in.TxHash != nil {
			if m.Status == market.MatchCancelled {
				return errs.ErrMatchCancelled
			}
			if err := m.AttachTxHash(*in.TxHash, now); err != nil {
				return err
			}
			if m.Status == market.MatchActive {
				if err := uc.recordSettlement(ctx, tx, m, offer, demand); err != nil {
					return err
				}
			}
		}

		if err := tx.Matches().Update(ctx, tx.DB(), m); err != nil {
			return err
		}
		if !sidesChanged {
			return nil
		}
		if err := tx.SupplyOffers().Update(ctx, tx.DB(), offer); err != nil {
			return err
		}
		return tx.DemandRequests().Update(ctx, tx.DB(), demand)
	})
}

// recordSettlement verifies the payment for the whole request duration and
// records it. A hash that is already recorded is left alone, so a repeated
// PATCH succeeds without a second row. A transfer the chain reports as failed
// aborts the update.
func (uc *matchCommandsImpl) recordSettlement(ctx context.Context, tx shared.Tx, m *market.Match, offer *market.SupplyOffer, demand *market.DemandRequest) error {
	existing, err := tx.Reads().TransactionByHash(ctx, m.TxHash)
	switch {
	case err == nil && existing != nil:
		return nil
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return err
	}

	exp := shared.SettlementExpectation{
		TxHash: m.TxHash,
		Payer:  demand.WalletAddress,
		Payee:  offer.WalletAddress,
		Amount: m.TotalCost(demand.DurationHours),
	}

	status, err := uc.verifier.Verify(ctx, exp)
	if err != nil {
		return err
	}
	if status == market.TxFailed {
		slog.Warn("settlement rejected",
			"match_id", m.ID.String(),
			"tx_hash", exp.TxHash)
		return errs.ErrSettlementFailed
	}

	t, err := market.NewTransaction(market.NewTransactionParams{
		MatchID: m.ID,
		TxHash:  exp.TxHash,
		Amount:  exp.Amount,
		Status:  status,
	}, uc.clock.Now())
	if err != nil {
		return err
	}
	if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
		// Another match recorded the same hash after the lookup above. The
		// failed insert has aborted this transaction, so it cannot carry on.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

// Delete removes a match and returns the offer to the pool. The request is
// reopened unless the match had completed.
func (uc *matchCommandsImpl) Delete(ctx context.Context, id uuid.UUID, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, offer, demand, err := uc.lockMatch(ctx, tx, id, wallet)
		if err != nil {
			return err
		}

		if err := tx.Matches().Delete(ctx, tx.DB(), m.ID); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrMatchHasTransactions
			}
			return notFoundAs(err, errs.ErrMatchNotFound)
		}

		now := uc.clock.Now()
		if m.Status == market.MatchCompleted {
			offer.Available = true
			offer.UpdatedAt = now
		} else {
			market.Release(offer, demand, now)
		}

		if err := tx.SupplyOffers().Update(ctx, tx.DB(), offer); err != nil {
			return err
		}
		return tx.DemandRequests().Update(ctx, tx.DB(), demand)
	})
}

// lockMatch locks the match, its offer and its request in that order and
// checks that wallet is one of the two parties.
func (uc *matchCommandsImpl) lockMatch(ctx context.Context, tx shared.Tx, id uuid.UUID, wallet string) (*market.Match, *market.SupplyOffer, *market.DemandRequest, error) {
	m, err := tx.Matches().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, nil, nil, notFoundAs(err, errs.ErrMatchNotFound)
	}
	offer, err := tx.SupplyOffers().FindForUpdate(ctx, tx.DB(), m.SupplyOfferID)
	if err != nil {
		return nil, nil, nil, err
	}
	demand, err := tx.DemandRequests().FindForUpdate(ctx, tx.DB(), m.DemandRequestID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !m.InvolvesWallet(wallet, offer, demand) {
		return nil, nil, nil, errs.ErrNotMatchParty
	}
	return m, offer, demand, nil
}
