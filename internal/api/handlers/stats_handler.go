package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lionfit/gym-management-backend/internal/service"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get returns the dashboard snapshot, recomputed on every call
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.statsService.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
