package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lionfit/gym-management-backend/internal/report"
	"github.com/lionfit/gym-management-backend/internal/service"
)

type ReportHandler struct {
	statsService service.StatsService
}

func NewReportHandler(statsService service.StatsService) *ReportHandler {
	return &ReportHandler{statsService: statsService}
}

// Summary renders the current dashboard figures as a downloadable PDF
func (h *ReportHandler) Summary(c *gin.Context) {
	stats, err := h.statsService.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	pdfBytes, err := report.RenderSummary(stats, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="gym-summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
