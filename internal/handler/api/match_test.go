//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"compute-market/internal/domain/market"
	"compute-market/internal/handler/api"
	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/pkg/errs"
	"compute-market/internal/usecase/commands"
	"compute-market/internal/usecase/queries"
	"compute-market/tests/common/builder"
	"compute-market/tests/common/httptest"
	commandsmock "compute-market/tests/mock/commands"
	queriesmock "compute-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMatchCommands
	mockQueries  *queriesmock.MockMatchQueries

	supply *queries.SupplyOfferView
	demand *queries.DemandRequestView
	match  *queries.MatchView
}

func (s *MatchHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMatchQueries(s.mockCtrl)
	handler := api.NewMatchHandler(s.mockCommands, s.mockQueries)
	auth := newTestAuth(s.mockCtrl)

	s.router.GET("/api/matches", handler.List)
	s.router.GET("/api/matches/:id", handler.Get)
	s.router.POST("/api/matches", auth, handler.Create)
	s.router.PATCH("/api/matches/:id", auth, handler.Update)
	s.router.DELETE("/api/matches/:id", auth, handler.Delete)

	s.supply = builder.NewSupplyOfferBuilder().BuildViewQuery()
	s.demand = builder.NewDemandRequestBuilder().BuildViewQuery()
	s.match = builder.NewMatchBuilder().BuildViewQuery(s.supply, s.demand)
}

func (s *MatchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchHandlerSuite(t *testing.T) {
	suite.Run(t, new(MatchHandlerTestSuite))
}

func (s *MatchHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.MatchView{s.match}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/matches", nil, "")

	var body []resdto.MatchResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(s.match.ID, body[0].ID)
	s.Equal(s.supply.WalletAddress, body[0].SupplyOffer.WalletAddress)
	s.Equal(s.demand.WalletAddress, body[0].DemandRequest.WalletAddress)
	s.True(s.match.AgreedPrice.Equal(body[0].AgreedPrice))
}

func (s *MatchHandlerTestSuite) TestGet() {
	url := "/api/matches/" + s.match.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.match.ID).Return(s.match, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.match.ID).Return(nil, errs.ErrMatchNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "match not found")
	})
}

func (s *MatchHandlerTestSuite) TestCreate() {
	url := "/api/matches"
	reqBody := map[string]any{
		"supplyOfferId":   s.supply.ID.String(),
		"demandRequestId": s.demand.ID.String(),
	}

	s.Run("success: 201 with both sides", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.supply.ID, s.demand.ID, builder.BuyerWallet).
			Return(&commands.CreateResult{ID: s.match.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.match.ID).Return(s.match, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.match.ID, body.ID)
		s.Equal(s.supply.ID, body.SupplyOfferID)
		s.Equal(s.demand.ID, body.DemandRequestID)
	})

	s.Run("error: 400 on a missing id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"supplyOfferId": s.supply.ID.String()}, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "offer missing", err: errs.ErrSupplyOfferNotFound, status: http.StatusNotFound},
			{name: "request missing", err: errs.ErrDemandRequestNotFound, status: http.StatusNotFound},
			{name: "not request owner", err: errs.ErrNotOwner, status: http.StatusForbidden},
			{name: "offer taken", err: market.ErrOfferUnavailable, status: http.StatusConflict},
			{name: "request not active", err: market.ErrDemandNotActive, status: http.StatusConflict},
			{name: "own offer", err: market.ErrSelfMatch, status: http.StatusConflict},
			{name: "gpu mismatch", err: errs.ErrGPUTypeMismatch, status: http.StatusConflict},
			{name: "storage failure", err: errors.New("deadlock"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.supply.ID, s.demand.ID, builder.BuyerWallet).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *MatchHandlerTestSuite) TestUpdate() {
	url := "/api/matches/" + s.match.ID.String()
	txHash := "0x" + strings.Repeat("ab", 32)

	s.Run("success: status change", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.match.ID, gomock.Any(), builder.SupplierWallet).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.UpdateMatchInput, _ string) error {
				s.Require().NotNil(in.Status)
				s.Equal(market.MatchActive, *in.Status)
				s.Nil(in.TxHash)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.match.ID).Return(s.match, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "active"}, supplierToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: settlement hash", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.match.ID, gomock.Any(), builder.BuyerWallet).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.UpdateMatchInput, _ string) error {
				s.Require().NotNil(in.TxHash)
				s.Equal(txHash, *in.TxHash)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.match.ID).Return(s.match, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"txHash": txHash}, buyerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed input", func() {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "short hash", body: map[string]any{"txHash": "0x1234"}},
			{name: "non-hex hash", body: map[string]any{"txHash": "0x" + strings.Repeat("zz", 32)}},
			{name: "unknown status", body: map[string]any{"status": "settled"}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, tc.body, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "outsider", err: errs.ErrNotMatchParty, status: http.StatusForbidden},
			{name: "illegal transition", err: market.ErrIllegalTransition, status: http.StatusConflict},
			{name: "cancelled match", err: errs.ErrMatchCancelled, status: http.StatusConflict},
			{name: "failed on chain", err: errs.ErrSettlementFailed, status: http.StatusConflict},
			{name: "hash reused", err: errs.ErrDuplicateTransaction, status: http.StatusBadRequest},
			{name: "no rpc", err: errs.Mark(errors.New("dial tcp"), errs.ErrChainUnavailable), status: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), s.match.ID, gomock.Any(), builder.BuyerWallet).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"txHash": txHash}, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *MatchHandlerTestSuite) TestDelete() {
	url := "/api/matches/" + s.match.ID.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.match.ID, builder.SupplierWallet).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, supplierToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 once transactions exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.match.ID, builder.SupplierWallet).
			Return(errs.Mark(errors.New("fk violation"), errs.ErrMatchHasTransactions))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, supplierToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "recorded transactions")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
