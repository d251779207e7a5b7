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

type DemandRequestCommands interface {
	Create(ctx context.Context, params market.NewDemandRequestParams) (*CreateResult, error)
	Update(ctx context.Context, id uuid.UUID, update market.DemandRequestUpdate, wallet string) error
	Delete(ctx context.Context, id uuid.UUID, wallet string) error
}

type demandRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDemandRequestCommands(uow shared.UnitOfWork, clk clock.Clock) DemandRequestCommands {
	return &demandRequestCommandsImpl{uow: uow, clock: clk}
}

func (uc *demandRequestCommandsImpl) Create(ctx context.Context, params market.NewDemandRequestParams) (*CreateResult, error) {
	demand, err := market.NewDemandRequest(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.DemandRequests().Create(ctx, tx.DB(), demand)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateResult{ID: demand.ID}, nil
}

func (uc *demandRequestCommandsImpl) Update(ctx context.Context, id uuid.UUID, update market.DemandRequestUpdate, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		demand, err := tx.DemandRequests().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrDemandRequestNotFound)
		}
		if !demand.OwnedBy(wallet) {
			return errs.ErrNotOwner
		}
		if err := demand.Apply(update, uc.clock.Now()); err != nil {
			return err
		}
		return tx.DemandRequests().Update(ctx, tx.DB(), demand)
	})
}

func (uc *demandRequestCommandsImpl) Delete(ctx context.Context, id uuid.UUID, wallet string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		demand, err := tx.DemandRequests().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return notFoundAs(err, errs.ErrDemandRequestNotFound)
		}
		if !demand.OwnedBy(wallet) {
			return errs.ErrNotOwner
		}
		if err := tx.DemandRequests().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrDemandRequestInUse
			}
			return notFoundAs(err, errs.ErrDemandRequestNotFound)
		}
		return nil
	})
}
