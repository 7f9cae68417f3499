package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/notify"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

const (
	employeesPath = "/employees"
	sheltersPath  = "/shelters"
)

// EmployeeHandler serves the employee page.
type EmployeeHandler struct {
	service *application.EmployeeService
	pages   *Pages
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *application.EmployeeService, pages *Pages) *EmployeeHandler {
	return &EmployeeHandler{service: service, pages: pages}
}

// RegisterRoutes registers the employee page routes.
func (h *EmployeeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(employeesPath, h.List)
	r.POST(employeesPath, h.Create)
	r.POST(employeesPath+"/actions", h.Action)
}

// List shows every employee.
func (h *EmployeeHandler) List(c *gin.Context) {
	h.render(c, nil)
}

func (h *EmployeeHandler) render(c *gin.Context, dialog *view.Dialog) {
	h.pages.Render(c, "employees.html", func() view.Page {
		page := h.page(c)
		page.Dialog = dialog
		return page
	})
}

func (h *EmployeeHandler) page(c *gin.Context) view.Page {
	page := view.NewPage("Manage Employees", "employees", employeesPath)
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		page.Region = view.ErrorRegion(view.EmployeesID, "Error: ", err)
	} else {
		page.Region = view.EmployeeTable(employees)
	}
	return page
}

func (h *EmployeeHandler) reject(c *gin.Context, text string) {
	h.pages.Reject(c, "employees.html", func() view.Page { return h.page(c) }, text)
}

// Create submits the add-employee form.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req application.CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Error: "+bindMessage(err))
		return
	}

	id, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.reject(c, errorText(err))
		return
	}
	h.pages.Success(c, employeesPath, fmt.Sprintf("Success! New employee added with ID: %d", id))
}

// Action dispatches the row buttons of the employee table.
func (h *EmployeeHandler) Action(c *gin.Context) {
	switch c.PostForm("action") {
	case view.ActionUpdateSalary:
		h.updateSalary(c)
	case view.ActionCancel:
		seeOther(c, employeesPath)
	default:
		h.pages.Failure(c, employeesPath, "Error: unknown action")
	}
}

func (h *EmployeeHandler) updateSalary(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.pages.Acknowledge(c, employeesPath, notify.KindError, "Error updating salary: "+err.Error())
		return
	}

	if !confirmed(c) {
		h.render(c, view.PromptDialog(employeesPath+"/actions", view.ActionUpdateSalary,
			fmt.Sprintf("Enter new salary for %s (Current: $%s):", c.PostForm("name"), c.PostForm("current")),
			rowFields(c, "id", "name", "current"),
			view.Prompt{Name: "salary", Label: "New salary"}))
		return
	}

	sent, err := h.service.UpdateSalary(c.Request.Context(), id, c.PostForm("salary"))
	switch {
	case !sent && err == nil:
		seeOther(c, employeesPath)
	case errors.Is(err, application.ErrInvalidSalary):
		h.pages.Acknowledge(c, employeesPath, notify.KindError, "Invalid salary amount.")
	case err != nil:
		h.pages.Acknowledge(c, employeesPath, notify.KindError, "Error updating salary: "+httpclient.Message(err))
	default:
		h.pages.Acknowledge(c, employeesPath, notify.KindSuccess,
			"Salary updated successfully! This change was logged in the SalaryChangeLog table.")
	}
}

// ShelterHandler serves the shelter page.
type ShelterHandler struct {
	service *application.ShelterService
	pages   *Pages
}

// NewShelterHandler creates a new ShelterHandler.
func NewShelterHandler(service *application.ShelterService, pages *Pages) *ShelterHandler {
	return &ShelterHandler{service: service, pages: pages}
}

// RegisterRoutes registers the shelter page routes.
func (h *ShelterHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(sheltersPath, h.List)
	r.POST(sheltersPath, h.Create)
	r.POST(sheltersPath+"/actions", h.Action)
}

// List shows every shelter.
func (h *ShelterHandler) List(c *gin.Context) {
	h.render(c, nil)
}

func (h *ShelterHandler) render(c *gin.Context, dialog *view.Dialog) {
	h.pages.Render(c, "shelters.html", func() view.Page {
		page := h.page(c)
		page.Dialog = dialog
		return page
	})
}

func (h *ShelterHandler) page(c *gin.Context) view.Page {
	page := view.NewPage("Manage Shelters", "shelters", sheltersPath)
	shelters, err := h.service.ListShelters(c.Request.Context())
	if err != nil {
		page.Region = view.ErrorRegion(view.SheltersID, "Error: ", err)
	} else {
		page.Region = view.ShelterTable(shelters)
	}
	return page
}

func (h *ShelterHandler) reject(c *gin.Context, text string) {
	h.pages.Reject(c, "shelters.html", func() view.Page { return h.page(c) }, text)
}

// Create submits the add-shelter form.
func (h *ShelterHandler) Create(c *gin.Context) {
	var req application.CreateShelterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Error: "+bindMessage(err))
		return
	}

	id, err := h.service.CreateShelter(c.Request.Context(), req)
	if err != nil {
		h.reject(c, errorText(err))
		return
	}
	h.pages.Success(c, sheltersPath, fmt.Sprintf("Success! New shelter added with ID: %d", id))
}

// Action dispatches the row buttons of the shelter table.
func (h *ShelterHandler) Action(c *gin.Context) {
	switch c.PostForm("action") {
	case view.ActionDelete:
		h.delete(c)
	case view.ActionCancel:
		seeOther(c, sheltersPath)
	default:
		h.pages.Failure(c, sheltersPath, "Error: unknown action")
	}
}

func (h *ShelterHandler) delete(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.pages.Acknowledge(c, sheltersPath, notify.KindError, "Error: "+err.Error())
		return
	}

	if !confirmed(c) {
		h.render(c, view.ConfirmDialog(sheltersPath+"/actions", view.ActionDelete,
			fmt.Sprintf("Are you sure you want to delete Shelter ID %d? \n\n"+
				"(Note: Database will block deletion if employees/animals are still assigned - this tests the trigger.)", id),
			rowFields(c, "id", "name")))
		return
	}

	if err := h.service.DeleteShelter(c.Request.Context(), id); err != nil {
		h.pages.Acknowledge(c, sheltersPath, notify.KindError, errorText(err))
		return
	}
	h.pages.Acknowledge(c, sheltersPath, notify.KindSuccess, fmt.Sprintf("Shelter ID %d deleted successfully.", id))
}
