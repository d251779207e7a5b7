package api

import (
	"net/http"

	"compute-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Marketplace statistics
// @Description Counts, averages, 24h activity and network health
// @Tags stats
// @Produce json
// @Success 200 {object} queries.MarketStats
// @Router /api/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.q.Get(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
