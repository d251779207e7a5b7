//go:build e2e

package market_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/usecase/queries"
	"compute-market/tests/common/authtest"
	"compute-market/tests/common/builder"
	"compute-market/tests/common/dbtest"
	"compute-market/tests/common/httptest"
	"compute-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const thirdWallet = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"

type marketSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper

	supplierToken string
	buyerToken    string
	outsiderToken string
}

func TestMarketSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(marketSuite))
}

func (s *marketSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
	s.supplierToken = s.jwtHelper.GenerateToken(s.T(), builder.SupplierWallet)
	s.buyerToken = s.jwtHelper.GenerateToken(s.T(), builder.BuyerWallet)
	s.outsiderToken = s.jwtHelper.GenerateToken(s.T(), thirdWallet)
}

func txHash(b byte) string {
	return "0x" + strings.Repeat(fmt.Sprintf("%02x", b), 32)
}

func (s *marketSuite) createSupply(b *builder.SupplyOfferBuilder) resdto.SupplyOfferResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/supply", b.BuildCreateRequestDTO(), s.supplierToken)
	var res resdto.SupplyOfferResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *marketSuite) createDemand(b *builder.DemandRequestBuilder) resdto.DemandRequestResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/demand", b.BuildCreateRequestDTO(), s.buyerToken)
	var res resdto.DemandRequestResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *marketSuite) createMatch(offerID, demandID uuid.UUID) resdto.MatchResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matches", map[string]any{
		"supplyOfferId":   offerID.String(),
		"demandRequestId": demandID.String(),
	}, s.buyerToken)
	var res resdto.MatchResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func (s *marketSuite) TestOfferAndRequestLifecycle() {
	s.Run("owner edits an offer and outsiders are refused", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		s.True(offer.Available)
		s.Equal(builder.SupplierWallet, offer.WalletAddress)

		url := "/api/supply/" + offer.ID.String()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"pricePerHour": "0.75"}, s.supplierToken)
		var updated resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.True(decimal.RequireFromString("0.75").Equal(updated.PricePerHour))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"available": false}, s.buyerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
		s.True(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, s.supplierToken)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "supply_offers"))
	})

	s.Run("listing filters by availability", func() {
		s.createSupply(builder.NewSupplyOfferBuilder())
		hidden := s.createSupply(builder.NewSupplyOfferBuilder())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, "/api/supply/"+hidden.ID.String(),
			map[string]any{"available": false}, s.supplierToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/supply?available=true", nil, "")
		var listed []resdto.SupplyOfferResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.NotEqual(hidden.ID, listed[0].ID)
	})

	s.Run("new requests start active", func() {
		demand := s.createDemand(builder.NewDemandRequestBuilder())
		s.Equal("active", demand.Status)
		s.Equal("active", dbtest.DemandStatus(s.T(), s.DB, demand.ID))
	})
}

func (s *marketSuite) TestCandidates() {
	s.Run("ranks compatible offers and skips the rest", func() {
		fits := s.createSupply(builder.NewSupplyOfferBuilder())
		s.createSupply(builder.NewSupplyOfferBuilder().WithResources(2, 0, 4, 50))
		demand := s.createDemand(builder.NewDemandRequestBuilder())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/demand/"+demand.ID.String()+"/candidates", nil, "")
		var candidates []resdto.CandidateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &candidates)
		s.Require().Len(candidates, 1)
		s.Equal(fits.ID, candidates[0].SupplyOffer.ID)
		s.Greater(candidates[0].Score, 0.0)
		s.NotEmpty(candidates[0].Reasons)
	})

	s.Run("404 for an unknown request", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/demand/"+uuid.NewString()+"/candidates", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *marketSuite) TestSettlementFlow() {
	s.Run("pairing, settling and completing a match", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		demand := s.createDemand(builder.NewDemandRequestBuilder())

		match := s.createMatch(offer.ID, demand.ID)
		s.Equal("pending", match.Status)
		s.True(offer.PricePerHour.Equal(match.AgreedPrice))
		s.False(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))
		s.Equal("matched", dbtest.DemandStatus(s.T(), s.DB, demand.ID))

		url := "/api/matches/" + match.ID.String()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": "active"}, s.outsiderToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")

		hash := txHash(0xab)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url,
			map[string]any{"status": "active", "txHash": hash}, s.buyerToken)
		var settled resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &settled)
		s.Equal("active", settled.Status)
		s.Equal(hash, settled.TxHash)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/transactions?walletAddress="+builder.BuyerWallet, nil, "")
		var page resdto.TransactionListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Transactions, 1)
		tx := page.Transactions[0]
		s.Equal("confirmed", tx.Status)
		s.Equal(match.ID, tx.MatchID)
		s.True(decimal.RequireFromString("12").Equal(tx.Amount), "0.50/h for 24h")
		s.Equal(int64(1), page.Pagination.Total)
		s.False(page.Pagination.HasMore)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"txHash": hash}, s.buyerToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "transactions"), "a repeated hash records nothing new")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/transactions", map[string]any{
			"matchId": match.ID.String(),
			"txHash":  hash,
			"amount":  "12",
		}, s.supplierToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "transactions"))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, url, nil, s.supplierToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": "completed"}, s.supplierToken)
		var completed resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &completed)
		s.Equal("completed", completed.Status)
		s.Equal("completed", dbtest.DemandStatus(s.T(), s.DB, demand.ID))
		s.False(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stats", nil, "")
		var stats queries.MarketStats
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &stats)
		s.Equal(int64(1), stats.Matches.Total)
		s.Equal(int64(1), stats.Transactions.Confirmed)
		s.True(decimal.RequireFromString("12").Equal(stats.Transactions.Volume))
	})

	s.Run("a manually recorded transaction stays pending", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		demand := s.createDemand(builder.NewDemandRequestBuilder())
		match := s.createMatch(offer.ID, demand.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/transactions", map[string]any{
			"matchId": match.ID.String(),
			"txHash":  txHash(0xcd),
			"amount":  "5.5",
		}, s.buyerToken)
		var tx resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &tx)
		s.Equal("pending", tx.Status)
		s.Equal("USDC", tx.Token)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/transactions", map[string]any{
			"matchId": match.ID.String(),
			"txHash":  txHash(0xce),
			"amount":  "1",
		}, s.outsiderToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func (s *marketSuite) TestReleasingMatches() {
	s.Run("cancelling restores both sides", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		demand := s.createDemand(builder.NewDemandRequestBuilder())
		match := s.createMatch(offer.ID, demand.ID)

		url := "/api/matches/" + match.ID.String()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, s.supplierToken)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.True(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))
		s.Equal("active", dbtest.DemandStatus(s.T(), s.DB, demand.ID))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url, map[string]any{"txHash": txHash(0x11)}, s.buyerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "transactions"))
	})

	s.Run("deleting an unsettled match releases both sides", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		demand := s.createDemand(builder.NewDemandRequestBuilder())
		match := s.createMatch(offer.ID, demand.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/matches/"+match.ID.String(), nil, s.buyerToken)
		s.Equal(http.StatusNoContent, w.Code)
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "matches"))
		s.True(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))
		s.Equal("active", dbtest.DemandStatus(s.T(), s.DB, demand.ID))
	})

	s.Run("an offer referenced by a match cannot be deleted", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		demand := s.createDemand(builder.NewDemandRequestBuilder())
		s.createMatch(offer.ID, demand.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/supply/"+offer.ID.String(), nil, s.supplierToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

func (s *marketSuite) TestPairingRules() {
	s.Run("auto-match picks the cheapest fitting offer", func() {
		s.createSupply(builder.NewSupplyOfferBuilder().WithPrice("0.90"))
		cheap := s.createSupply(builder.NewSupplyOfferBuilder().WithPrice("0.40"))
		demand := s.createDemand(builder.NewDemandRequestBuilder())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/demand/"+demand.ID.String()+"/auto-match", nil, s.buyerToken)
		var match resdto.MatchResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &match)
		s.Equal(cheap.ID, match.SupplyOfferID)
		s.Equal("matched", match.DemandRequest.Status)
	})

	s.Run("auto-match 404 without a fitting offer", func() {
		s.createSupply(builder.NewSupplyOfferBuilder().WithResources(1, 0, 1, 10))
		demand := s.createDemand(builder.NewDemandRequestBuilder())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/demand/"+demand.ID.String()+"/auto-match", nil, s.buyerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
		s.Equal("active", dbtest.DemandStatus(s.T(), s.DB, demand.ID))
	})

	s.Run("gpu types must agree", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder().WithGPU(1, "A100"))
		demand := s.createDemand(builder.NewDemandRequestBuilder().WithGPU(1, "RTX 4090"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matches", map[string]any{
			"supplyOfferId":   offer.ID.String(),
			"demandRequestId": demand.ID.String(),
		}, s.buyerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		s.True(dbtest.SupplyAvailable(s.T(), s.DB, offer.ID))
	})

	s.Run("a taken offer cannot be paired twice", func() {
		offer := s.createSupply(builder.NewSupplyOfferBuilder())
		first := s.createDemand(builder.NewDemandRequestBuilder())
		second := s.createDemand(builder.NewDemandRequestBuilder())
		s.createMatch(offer.ID, first.ID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/matches", map[string]any{
			"supplyOfferId":   offer.ID.String(),
			"demandRequestId": second.ID.String(),
		}, s.buyerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
		s.Equal("active", dbtest.DemandStatus(s.T(), s.DB, second.ID))
	})
}

func (s *marketSuite) TestWalletBalanceWithoutRPC() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/wallets/"+builder.BuyerWallet+"/usdc-balance", nil, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "")
}
