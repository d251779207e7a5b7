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
	"github.com/google/uuid"
)

type SupplyHandler struct {
	cmds commands.SupplyOfferCommands
	q    queries.SupplyOfferQueries
}

func NewSupplyHandler(cmds commands.SupplyOfferCommands, q queries.SupplyOfferQueries) *SupplyHandler {
	return &SupplyHandler{cmds: cmds, q: q}
}

// @Summary List supply offers
// @Description List supply offers, newest first
// @Tags supply
// @Produce json
// @Param available query bool false "Filter by availability"
// @Success 200 {array} resdto.SupplyOfferResponse
// @Failure 400 {object} httperr.Response
// @Router /api/supply [get]
func (h *SupplyHandler) List(c *gin.Context) {
	var available *bool
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid available filter", nil)
			return
		}
		available = &v
	}

	views, err := h.q.List(c.Request.Context(), available)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplyOfferViews(views))
}

// @Summary Get supply offer
// @Tags supply
// @Produce json
// @Param id path string true "Supply offer ID"
// @Success 200 {object} resdto.SupplyOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/supply/{id} [get]
func (h *SupplyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplyOfferView(view))
}

// @Summary Create supply offer
// @Description Publish a compute offer owned by the caller's wallet
// @Tags supply
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSupplyOfferRequest true "Create supply offer request"
// @Success 201 {object} resdto.SupplyOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/supply [post]
func (h *SupplyHandler) Create(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateSupplyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToParams(wallet))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load supply offer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSupplyOfferView(view))
}

// @Summary Update supply offer
// @Description Change availability, price or location of an owned offer
// @Tags supply
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Supply offer ID"
// @Param request body reqdto.UpdateSupplyOfferRequest true "Update supply offer request"
// @Success 200 {object} resdto.SupplyOfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/supply/{id} [patch]
func (h *SupplyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.UpdateSupplyOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToUpdate(), wallet); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load supply offer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSupplyOfferView(view))
}

// @Summary Delete supply offer
// @Tags supply
// @Security BearerAuth
// @Param id path string true "Supply offer ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supply/{id} [delete]
func (h *SupplyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, wallet); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
