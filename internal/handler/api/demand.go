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

type DemandHandler struct {
	cmds      commands.DemandRequestCommands
	matchCmds commands.MatchCommands
	q         queries.DemandRequestQueries
	matchQ    queries.MatchQueries
}

func NewDemandHandler(
	cmds commands.DemandRequestCommands,
	matchCmds commands.MatchCommands,
	q queries.DemandRequestQueries,
	matchQ queries.MatchQueries,
) *DemandHandler {
	return &DemandHandler{cmds: cmds, matchCmds: matchCmds, q: q, matchQ: matchQ}
}

// @Summary List demand requests
// @Description List active and matched demand requests, newest first
// @Tags demand
// @Produce json
// @Success 200 {array} resdto.DemandRequestResponse
// @Router /api/demand [get]
func (h *DemandHandler) List(c *gin.Context) {
	views, err := h.q.ListOpen(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDemandRequestViews(views))
}

// @Summary Get demand request
// @Tags demand
// @Produce json
// @Param id path string true "Demand request ID"
// @Success 200 {object} resdto.DemandRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/demand/{id} [get]
func (h *DemandHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDemandRequestView(view))
}

// @Summary Create demand request
// @Tags demand
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDemandRequest true "Create demand request"
// @Success 201 {object} resdto.DemandRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/demand [post]
func (h *DemandHandler) Create(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateDemandRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load demand request", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDemandRequestView(view))
}

// @Summary Update demand request
// @Description Change status or budget of an owned request
// @Tags demand
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Demand request ID"
// @Param request body reqdto.UpdateDemandRequest true "Update demand request"
// @Success 200 {object} resdto.DemandRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/demand/{id} [patch]
func (h *DemandHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.UpdateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	update, err := req.ToUpdate()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, update, wallet); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load demand request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDemandRequestView(view))
}

// @Summary Delete demand request
// @Tags demand
// @Security BearerAuth
// @Param id path string true "Demand request ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/demand/{id} [delete]
func (h *DemandHandler) Delete(c *gin.Context) {
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

// @Summary Rank candidate offers
// @Description Score available supply offers against a demand request, best first
// @Tags demand
// @Produce json
// @Param id path string true "Demand request ID"
// @Param limit query int false "Maximum number of candidates" default(5)
// @Success 200 {array} resdto.CandidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/demand/{id}/candidates [get]
func (h *DemandHandler) Candidates(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, errInvalidQuery("limit", raw), "Invalid limit", nil)
			return
		}
		limit = v
	}

	views, err := h.q.Candidates(c.Request.Context(), id, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCandidateViews(views))
}

// @Summary Auto-match demand request
// @Description Pair an owned request with the cheapest offer meeting every hard constraint
// @Tags demand
// @Produce json
// @Security BearerAuth
// @Param id path string true "Demand request ID"
// @Success 201 {object} resdto.MatchResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/demand/{id}/auto-match [post]
func (h *DemandHandler) AutoMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	result, err := h.matchCmds.AutoMatch(c.Request.Context(), id, wallet)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.matchQ.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load match", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMatchView(view))
}
