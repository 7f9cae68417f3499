package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/domain/report"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

// ReportHandler serves the analytic reports page.
type ReportHandler struct {
	service *application.ReportService
	pages   *Pages
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *application.ReportService, pages *Pages) *ReportHandler {
	return &ReportHandler{service: service, pages: pages}
}

// RegisterRoutes registers the reports route.
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reports", h.Show)
}

// Show renders every standard report; each one fails on its own.
func (h *ReportHandler) Show(c *gin.Context) {
	h.pages.Render(c, "reports.html", func() view.Page {
		page := view.NewPage("Analytic Reports", "reports", "/reports")
		for _, res := range h.service.LoadAll(c.Request.Context(), report.Standard()) {
			section := view.ReportSection{Title: res.Definition.Title}
			if res.Err != nil {
				section.Region = view.ErrorRegion(res.Definition.ID+"-container", "Error: ", res.Err)
			} else {
				section.Region = view.ReportTable(res.Definition, res.Rows)
			}
			page.Reports = append(page.Reports, section)
		}
		return page
	})
}
