package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/notify"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

// DashboardHandler serves the landing page and the adoption form.
type DashboardHandler struct {
	animals   *application.AnimalService
	adoptions *application.AdoptionService
	pages     *Pages
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(animals *application.AnimalService, adoptions *application.AdoptionService, pages *Pages) *DashboardHandler {
	return &DashboardHandler{animals: animals, adoptions: adoptions, pages: pages}
}

// RegisterRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
	r.POST("/adopt", h.Adopt)
}

// Index shows the animals that are still available.
func (h *DashboardHandler) Index(c *gin.Context) {
	h.pages.Render(c, "dashboard.html", func() view.Page {
		page := view.NewPage("Dashboard", "dashboard", "/")
		animals, err := h.animals.ListAvailable(c.Request.Context())
		if err != nil {
			page.Region = view.ErrorRegion(view.AvailableAnimalsID, "Error fetching animals: ", err)
		} else {
			page.Region = view.AvailableAnimalCards(animals)
		}
		return page
	})
}

// Adopt submits the adoption form.
func (h *DashboardHandler) Adopt(c *gin.Context) {
	var req application.AdoptRequest
	if err := c.ShouldBind(&req); err != nil {
		h.pages.Acknowledge(c, "/", notify.KindError, "Adoption Failed: "+bindMessage(err))
		return
	}

	details, err := h.adoptions.Adopt(c.Request.Context(), req)
	if err != nil {
		h.pages.Acknowledge(c, "/", notify.KindError, "Adoption Failed: "+httpclient.Message(err))
		return
	}
	h.pages.Acknowledge(c, "/", notify.KindSuccess, fmt.Sprintf("Adoption Successful! (Log ID: %d)", details.AdoptionID))
}
