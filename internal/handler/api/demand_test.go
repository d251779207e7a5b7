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
	"compute-market/tests/common/testutil"
	commandsmock "compute-market/tests/mock/commands"
	queriesmock "compute-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DemandHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDemandRequestCommands
	mockMatches  *commandsmock.MockMatchCommands
	mockQueries  *queriesmock.MockDemandRequestQueries
	mockMatchQ   *queriesmock.MockMatchQueries
}

func (s *DemandHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDemandRequestCommands(s.mockCtrl)
	s.mockMatches = commandsmock.NewMockMatchCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDemandRequestQueries(s.mockCtrl)
	s.mockMatchQ = queriesmock.NewMockMatchQueries(s.mockCtrl)
	handler := api.NewDemandHandler(s.mockCommands, s.mockMatches, s.mockQueries, s.mockMatchQ)
	auth := newTestAuth(s.mockCtrl)

	s.router.GET("/api/demand", handler.List)
	s.router.GET("/api/demand/:id", handler.Get)
	s.router.GET("/api/demand/:id/candidates", handler.Candidates)
	s.router.POST("/api/demand", auth, handler.Create)
	s.router.PATCH("/api/demand/:id", auth, handler.Update)
	s.router.DELETE("/api/demand/:id", auth, handler.Delete)
	s.router.POST("/api/demand/:id/auto-match", auth, handler.AutoMatch)
}

func (s *DemandHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDemandHandlerSuite(t *testing.T) {
	suite.Run(t, new(DemandHandlerTestSuite))
}

func (s *DemandHandlerTestSuite) TestList() {
	active := builder.NewDemandRequestBuilder().BuildViewQuery()
	matched := builder.NewDemandRequestBuilder().WithStatus(market.DemandMatched).BuildViewQuery()
	s.mockQueries.EXPECT().ListOpen(gomock.Any()).Return([]*queries.DemandRequestView{matched, active}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/demand", nil, "")

	var body []resdto.DemandRequestResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("matched", body[0].Status)
	s.Equal("active", body[1].Status)
}

func (s *DemandHandlerTestSuite) TestGet() {
	view := builder.NewDemandRequestBuilder().WithJobDescription("fine-tune a model").BuildViewQuery()
	url := "/api/demand/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.DemandRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("fine-tune a model", body.JobDescription)
		s.Equal(view.Duration, body.Duration)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrDemandRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "demand request not found")
	})
}

func (s *DemandHandlerTestSuite) TestCreate() {
	url := "/api/demand"
	b := builder.NewDemandRequestBuilder().WithWallet(builder.BuyerWallet)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p market.NewDemandRequestParams) (*commands.CreateResult, error) {
				s.Equal(builder.BuyerWallet, p.WalletAddress)
				s.Equal(reqBody.Duration, p.DurationHours)
				return &commands.CreateResult{ID: view.ID}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)

		var body resdto.DemandRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(builder.BuyerWallet, body.WalletAddress)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "duration below range", mutate: testutil.Field("duration", 0)},
			{name: "duration above range", mutate: testutil.Field("duration", 8761)},
			{name: "missing cpuCores", mutate: testutil.Field("cpuCores", nil)},
			{name: "ram above range", mutate: testutil.Field("ramGB", 1025)},
			{name: "job description too long", mutate: testutil.Field("jobDescription", strings.Repeat("x", 501))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				payload := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *DemandHandlerTestSuite) TestUpdate() {
	view := builder.NewDemandRequestBuilder().WithStatus(market.DemandCancelled).BuildViewQuery()
	url := "/api/demand/" + view.ID.String()

	s.Run("success: status is parsed", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), builder.BuyerWallet).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, u market.DemandRequestUpdate, _ string) error {
				s.Require().NotNil(u.Status)
				s.Equal(market.DemandCancelled, *u.Status)
				s.Nil(u.MaxPricePerHour)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, buyerToken)

		var body resdto.DemandRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 400 on an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paused"}, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for another wallet", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), builder.SupplierWallet).Return(errs.ErrNotOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"maxPricePerHour": 2}, supplierToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "does not own")
	})
}

func (s *DemandHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/demand/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, builder.BuyerWallet).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, buyerToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while matched", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, builder.BuyerWallet).
			Return(errs.Mark(errors.New("fk violation"), errs.ErrDemandRequestInUse))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "referenced by a match")
	})
}

func (s *DemandHandlerTestSuite) TestCandidates() {
	id := uuid.New()
	url := "/api/demand/" + id.String() + "/candidates"
	offer := builder.NewSupplyOfferBuilder().BuildViewQuery()
	candidates := []*queries.CandidateView{{
		SupplyOffer: *offer,
		Score:       87.5,
		Reasons:     []string{"Compatibility score: 88/100"},
	}}

	s.Run("success: default limit", func() {
		s.mockQueries.EXPECT().Candidates(gomock.Any(), id, 0).Return(candidates, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.CandidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(offer.ID, body[0].SupplyOffer.ID)
		s.InDelta(87.5, body[0].Score, 1e-9)
		s.Equal(candidates[0].Reasons, body[0].Reasons)
	})

	s.Run("success: explicit limit", func() {
		s.mockQueries.EXPECT().Candidates(gomock.Any(), id, 3).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=3", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on a bad limit", func() {
		for _, limit := range []string{"0", "-1", "ten"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit="+limit, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
		}
	})

	s.Run("error: 404 for an unknown request", func() {
		s.mockQueries.EXPECT().Candidates(gomock.Any(), id, 0).Return(nil, errs.ErrDemandRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *DemandHandlerTestSuite) TestAutoMatch() {
	supply := builder.NewSupplyOfferBuilder().BuildViewQuery()
	demand := builder.NewDemandRequestBuilder().WithWallet(builder.BuyerWallet).BuildViewQuery()
	match := builder.NewMatchBuilder().BuildViewQuery(supply, demand)
	url := "/api/demand/" + demand.ID.String() + "/auto-match"

	s.Run("success: 201 with the new match", func() {
		s.mockMatches.EXPECT().AutoMatch(gomock.Any(), demand.ID, builder.BuyerWallet).
			Return(&commands.CreateResult{ID: match.ID}, nil)
		s.mockMatchQ.EXPECT().GetByID(gomock.Any(), match.ID).Return(match, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, buyerToken)

		var body resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(match.ID, body.ID)
		s.Equal(supply.ID, body.SupplyOffer.ID)
		s.Equal(demand.ID, body.DemandRequest.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "no compatible offer", err: errs.ErrNoCompatibleOffer, status: http.StatusNotFound},
			{name: "not owner", err: errs.ErrNotOwner, status: http.StatusForbidden},
			{name: "request not active", err: market.ErrDemandNotActive, status: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockMatches.EXPECT().AutoMatch(gomock.Any(), demand.ID, builder.BuyerWallet).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}
