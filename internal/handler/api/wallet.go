package api

import (
	"net/http"

	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	q queries.WalletQueries
}

func NewWalletHandler(q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{q: q}
}

// @Summary USDC balance
// @Description Read the on-chain USDC balance of a wallet
// @Tags wallets
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} resdto.USDCBalanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/wallets/{address}/usdc-balance [get]
func (h *WalletHandler) USDCBalance(c *gin.Context) {
	view, err := h.q.USDCBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUSDCBalanceView(view))
}
