//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SupplyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSupplyOfferCommands
	mockQueries  *queriesmock.MockSupplyOfferQueries
}

func (s *SupplyHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSupplyOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSupplyOfferQueries(s.mockCtrl)
	handler := api.NewSupplyHandler(s.mockCommands, s.mockQueries)
	auth := newTestAuth(s.mockCtrl)

	s.router.GET("/api/supply", handler.List)
	s.router.GET("/api/supply/:id", handler.Get)
	s.router.POST("/api/supply", auth, handler.Create)
	s.router.PATCH("/api/supply/:id", auth, handler.Update)
	s.router.DELETE("/api/supply/:id", auth, handler.Delete)
}

func (s *SupplyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSupplyHandlerSuite(t *testing.T) {
	suite.Run(t, new(SupplyHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *SupplyHandlerTestSuite) TestList() {
	view := builder.NewSupplyOfferBuilder().BuildViewQuery()

	s.Run("success: passes the availability filter through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, available *bool) ([]*queries.SupplyOfferView, error) {
				s.Require().NotNil(available)
				s.True(*available)
				return []*queries.SupplyOfferView{view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/supply?available=true", nil, "")

		var body []resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID, body[0].ID)
		s.True(view.PricePerHour.Equal(body[0].PricePerHour))
	})

	s.Run("success: no filter lists everything", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/supply", nil, "")

		var body []resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on a malformed filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/supply?available=maybe", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid available filter")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SupplyHandlerTestSuite) TestGet() {
	view := builder.NewSupplyOfferBuilder().BuildViewQuery()
	url := "/api/supply/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.WalletAddress, body.WalletAddress)
		s.Equal(view.RAMGB, body.RAMGB)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrSupplyOfferNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "supply offer not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/supply/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SupplyHandlerTestSuite) TestCreate() {
	url := "/api/supply"
	b := builder.NewSupplyOfferBuilder().WithGPU(1, "RTX 4090")
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: owner comes from the token", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p market.NewSupplyOfferParams) (*commands.CreateResult, error) {
				s.Equal(builder.SupplierWallet, p.WalletAddress)
				s.Equal("RTX 4090", p.Resources.GPUType)
				s.True(reqBody.PricePerHour.Equal(p.PricePerHour))
				return &commands.CreateResult{ID: view.ID}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, supplierToken)

		var body resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "cpuCores below range", mutate: testutil.Field("cpuCores", 0)},
			{name: "cpuCores above range", mutate: testutil.Field("cpuCores", 129)},
			{name: "gpuCount above range", mutate: testutil.Field("gpuCount", 17)},
			{name: "missing ramGB", mutate: testutil.Field("ramGB", nil)},
			{name: "storageGB above range", mutate: testutil.Field("storageGB", 10001)},
			{name: "wrong type", mutate: testutil.Field("cpuCores", "eight")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				payload := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, supplierToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 when the domain rejects the price", func() {
		payload := testutil.DtoMap(s.T(), reqBody, testutil.Field("pricePerHour", "0"))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, market.ErrInvalidPrice)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload, supplierToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "price per hour")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with an invalid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, supplierToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *SupplyHandlerTestSuite) TestUpdate() {
	view := builder.NewSupplyOfferBuilder().WithAvailable(false).BuildViewQuery()
	url := "/api/supply/" + view.ID.String()
	reqBody := map[string]any{"available": false, "pricePerHour": "0.75"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), builder.SupplierWallet).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, u market.SupplyOfferUpdate, _ string) error {
				s.Require().NotNil(u.Available)
				s.False(*u.Available)
				s.Require().NotNil(u.PricePerHour)
				s.True(decimal.RequireFromString("0.75").Equal(*u.PricePerHour))
				s.Nil(u.Location)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, supplierToken)

		var body resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "not owner", err: errs.ErrNotOwner, status: http.StatusForbidden},
			{name: "not found", err: errs.ErrSupplyOfferNotFound, status: http.StatusNotFound},
			{name: "bad price", err: market.ErrInvalidPrice, status: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), builder.BuyerWallet).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, buyerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *SupplyHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/supply/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, builder.SupplierWallet).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, supplierToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 while a match references it", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, builder.SupplierWallet).
			Return(errs.Mark(errors.New("fk violation"), errs.ErrSupplyOfferInUse))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, supplierToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "referenced by a match")
	})
}
