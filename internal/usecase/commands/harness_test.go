//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"compute-market/internal/pkg/clock"
	"compute-market/internal/usecase/shared"
	sharedmock "compute-market/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

// uowHarness runs every Within callback against one mocked transaction.
type uowHarness struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	supplies *sharedmock.MockSupplyOfferRepository
	demands  *sharedmock.MockDemandRequestRepository
	matches  *sharedmock.MockMatchRepository
	txns     *sharedmock.MockTransactionRepository
	nonces   *sharedmock.MockAuthNonceRepository
	verifier *sharedmock.MockSettlementVerifier
	clock    *clock.MockClock
}

func newUOWHarness(t *testing.T) *uowHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &uowHarness{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		supplies: sharedmock.NewMockSupplyOfferRepository(ctrl),
		demands:  sharedmock.NewMockDemandRequestRepository(ctrl),
		matches:  sharedmock.NewMockMatchRepository(ctrl),
		txns:     sharedmock.NewMockTransactionRepository(ctrl),
		nonces:   sharedmock.NewMockAuthNonceRepository(ctrl),
		verifier: sharedmock.NewMockSettlementVerifier(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().SupplyOffers().Return(h.supplies).AnyTimes()
	h.tx.EXPECT().DemandRequests().Return(h.demands).AnyTimes()
	h.tx.EXPECT().Matches().Return(h.matches).AnyTimes()
	h.tx.EXPECT().Transactions().Return(h.txns).AnyTimes()
	h.tx.EXPECT().AuthNonces().Return(h.nonces).AnyTimes()

	return h
}
