package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service dependency.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// WorkoutReport summarizes the caller's workouts over a date range given
// via the startDate and endDate query parameters.
func (h *ReportHandler) WorkoutReport(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	report, err := h.reportService.WorkoutReport(
		c.Request.Context(),
		identity.UserID,
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Workout report generated successfully", report)
}
