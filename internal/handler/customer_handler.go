package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

const (
	adoptersPath = "/adopters"
	donorsPath   = "/donors"
)

// AdopterHandler serves the adopter page.
type AdopterHandler struct {
	service *application.AdopterService
	pages   *Pages
}

// NewAdopterHandler creates a new AdopterHandler.
func NewAdopterHandler(service *application.AdopterService, pages *Pages) *AdopterHandler {
	return &AdopterHandler{service: service, pages: pages}
}

// RegisterRoutes registers the adopter page routes.
func (h *AdopterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(adoptersPath, h.List)
	r.POST(adoptersPath, h.Create)
}

// List shows every adopter.
func (h *AdopterHandler) List(c *gin.Context) {
	h.pages.Render(c, "adopters.html", func() view.Page { return h.page(c) })
}

func (h *AdopterHandler) page(c *gin.Context) view.Page {
	page := view.NewPage("Manage Adopters", "adopters", adoptersPath)
	adopters, err := h.service.ListAdopters(c.Request.Context())
	if err != nil {
		page.Region = view.ErrorRegion(view.AdoptersID, "Error: ", err)
	} else {
		page.Region = view.AdopterTable(adopters)
	}
	return page
}

func (h *AdopterHandler) reject(c *gin.Context, text string) {
	h.pages.Reject(c, "adopters.html", func() view.Page { return h.page(c) }, text)
}

// Create submits the add-adopter form.
func (h *AdopterHandler) Create(c *gin.Context) {
	var req application.CreateAdopterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Error: "+bindMessage(err))
		return
	}

	created, err := h.service.CreateAdopter(c.Request.Context(), req)
	if err != nil {
		h.reject(c, errorText(err))
		return
	}
	h.pages.Success(c, adoptersPath, fmt.Sprintf("Success! New adopter added. Customer ID: %d, Adopter ID: %d",
		created.CustomerID, created.AdopterID))
}

// DonorHandler serves the donor page.
type DonorHandler struct {
	service *application.DonorService
	pages   *Pages
}

// NewDonorHandler creates a new DonorHandler.
func NewDonorHandler(service *application.DonorService, pages *Pages) *DonorHandler {
	return &DonorHandler{service: service, pages: pages}
}

// RegisterRoutes registers the donor page routes.
func (h *DonorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(donorsPath, h.List)
	r.POST(donorsPath, h.Create)
}

// List shows every donor.
func (h *DonorHandler) List(c *gin.Context) {
	h.pages.Render(c, "donors.html", func() view.Page { return h.page(c) })
}

func (h *DonorHandler) page(c *gin.Context) view.Page {
	page := view.NewPage("Manage Donors", "donors", donorsPath)
	donors, err := h.service.ListDonors(c.Request.Context())
	if err != nil {
		page.Region = view.ErrorRegion(view.DonorsID, "Error: ", err)
	} else {
		page.Region = view.DonorTable(donors)
	}
	return page
}

func (h *DonorHandler) reject(c *gin.Context, text string) {
	h.pages.Reject(c, "donors.html", func() view.Page { return h.page(c) }, text)
}

// Create submits the add-donor form.
func (h *DonorHandler) Create(c *gin.Context) {
	var req application.CreateDonorRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Error: "+bindMessage(err))
		return
	}

	created, err := h.service.CreateDonor(c.Request.Context(), req)
	if err != nil {
		h.reject(c, errorText(err))
		return
	}
	h.pages.Success(c, donorsPath, fmt.Sprintf("Success! New donor added. Customer ID: %d, Donor ID: %d",
		created.CustomerID, created.DonorID))
}
