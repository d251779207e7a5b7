package api

import (
	"net/http"
	"strconv"

	reqdto "compute-market/internal/handler/dto/request"
	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/handler/httperr"
	"compute-market/internal/handler/middleware"
	"compute-market/internal/usecase/commands"
	"compute-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description List settlement transactions, optionally for one wallet on either side of the match
// @Tags transactions
// @Produce json
// @Param walletAddress query string false "Buyer or supplier wallet"
// @Param limit query int false "Page size (max 200)" default(50)
// @Param offset query int false "Items to skip" default(0)
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	filter := queries.TransactionFilter{WalletAddress: c.Query("walletAddress")}

	var ok bool
	if filter.Limit, ok = intQuery(c, "limit"); !ok {
		return
	}
	if filter.Offset, ok = intQuery(c, "offset"); !ok {
		return
	}

	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransactionPage(page))
}

// @Summary Record transaction
// @Description Record a settlement transaction for a match the caller is party to
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTransactionRequest true "Create transaction request"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	tx, err := h.cmds.Record(c.Request.Context(), req.ToParams(), wallet)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTransaction(tx))
}

// intQuery reads an optional non-negative integer query parameter; absent means zero.
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery(name, raw), "Invalid "+name, nil)
		return 0, false
	}
	return v, true
}
