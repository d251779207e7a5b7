package api

import (
	"net/http"

	reqdto "compute-market/internal/handler/dto/request"
	resdto "compute-market/internal/handler/dto/response"
	"compute-market/internal/handler/httperr"
	"compute-market/internal/handler/middleware"
	"compute-market/internal/usecase/commands"
	"compute-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	cmds commands.MatchCommands
	q    queries.MatchQueries
}

func NewMatchHandler(cmds commands.MatchCommands, q queries.MatchQueries) *MatchHandler {
	return &MatchHandler{cmds: cmds, q: q}
}

// @Summary List matches
// @Description List matches with their offer and request, newest first
// @Tags matches
// @Produce json
// @Success 200 {array} resdto.MatchResponse
// @Router /api/matches [get]
func (h *MatchHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchViews(views))
}

// @Summary Get match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/matches/{id} [get]
func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMatchView(view))
}

// @Summary Create match
// @Description Pair an available offer with an active request owned by the caller
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMatchRequest true "Create match request"
// @Success 201 {object} resdto.MatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches [post]
func (h *MatchHandler) Create(c *gin.Context) {
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.SupplyOfferID, req.DemandRequestID, wallet)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithMatch(c, http.StatusCreated, result.ID)
}

// @Summary Update match
// @Description Move a match through its lifecycle or attach a settlement transaction
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param request body reqdto.UpdateMatchRequest true "Update match request"
// @Success 200 {object} resdto.MatchResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/matches/{id} [patch]
func (h *MatchHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	wallet, ok := middleware.GetWallet(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, in, wallet); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondWithMatch(c, http.StatusOK, id)
}

// @Summary Delete match
// @Description Delete a match and return its offer and request to the market
// @Tags matches
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/matches/{id} [delete]
func (h *MatchHandler) Delete(c *gin.Context) {
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

func (h *MatchHandler) respondWithMatch(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load match", nil)
		return
	}
	c.JSON(status, resdto.FromMatchView(view))
}
