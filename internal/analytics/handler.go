package analytics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skillsync-backend/internal/shared/server/respond"
	"skillsync-backend/internal/shared/telemetry"
)

// Handler exposes the admin analytics endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches admin analytics routes to the router group. The
// group is expected to carry the admin role requirement.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/analytics", h.getReport)
	rg.GET("/admin/analytics/export", h.exportReport)
}

func (h *Handler) getReport(c *gin.Context) {
	report, err := h.Svc.BuildReport(c.Request.Context())
	if err != nil {
		telemetry.Error("analytics.report", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build report", nil)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) exportReport(c *gin.Context) {
	report, err := h.Svc.BuildReport(c.Request.Context())
	if err != nil {
		telemetry.Error("analytics.report", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build report", nil)
		return
	}
	data, err := ReportCSV(report)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render csv", nil)
		return
	}
	filename := fmt.Sprintf("usage_report_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
