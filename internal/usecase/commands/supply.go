package commands

import (
	"context"

	"compute-market/internal/domain/market"
	"compute-market/internal/infra"
	"compute-market/internal/pkg/clock"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type SupplyOfferCommands interface {
	Create(ctx context.Context, params market.NewSupplyOfferParams) (*CreateResult, error)
	Update(ctx context.Context, id uuid.UUID, update market.SupplyOfferUpdate, wallet string) error
	Delete(ctx context.Context, id uuid.UUID, wallet string) error
}

type supplyOfferCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSupplyOfferCommands(uow shared.UnitOfWork, clk clock.Clock) SupplyOfferCommands {
	return &supplyOfferCommandsImpl{uow: uow, clock: clk}
}

func (uc *supplyOfferCommandsImpl) Create(ctx context.Context, params market.NewSupplyOfferParams) (*CreateResult, error) {
	offer, err := market.NewSupplyOffer(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.SupplyOffers().Create(ctx, tx.DB(), offer)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateResult{ID: offer.ID}, nil
}

func (uc *supplyOfferCommandsImpl) Update(ctx context.Context, id uuid.UUID, update market.SupplyOfferUpdate, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offer, err := tx.SupplyOffers().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrSupplyOfferNotFound)
		}
		if !offer.OwnedBy(wallet) {
			return errs.ErrNotOwner
		}
		if err := offer.Apply(update, uc.clock.Now()); err != nil {
			return err
		}
		return tx.SupplyOffers().Update(ctx, tx.DB(), offer)
	})
}

// Delete refuses while any match still references the offer.
func (uc *supplyOfferCommandsImpl) Delete(ctx context.Context, id uuid.UUID, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		offer, err := tx.SupplyOffers().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrSupplyOfferNotFound)
		}
		if !offer.OwnedBy(wallet) {
			return errs.ErrNotOwner
		}
		if err := tx.SupplyOffers().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrSupplyOfferInUse
			}
			return notFoundAs(err, errs.ErrSupplyOfferNotFound)
		}
		return nil
	})
}
