package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shelter-admin/service-shelter-web/internal/application"
	"github.com/shelter-admin/service-shelter-web/internal/notify"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/view"
)

const animalsPath = "/animals"

// AnimalHandler serves the animal management page.
type AnimalHandler struct {
	service *application.AnimalService
	pages   *Pages
}

// NewAnimalHandler creates a new AnimalHandler.
func NewAnimalHandler(service *application.AnimalService, pages *Pages) *AnimalHandler {
	return &AnimalHandler{service: service, pages: pages}
}

// RegisterRoutes registers the animal page routes.
func (h *AnimalHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET(animalsPath, h.List)
	r.POST(animalsPath, h.Create)
	r.POST(animalsPath+"/actions", h.Action)
}

// List shows every animal.
func (h *AnimalHandler) List(c *gin.Context) {
	h.render(c, nil)
}

func (h *AnimalHandler) render(c *gin.Context, dialog *view.Dialog) {
	h.pages.Render(c, "animals.html", func() view.Page {
		page := h.page(c)
		page.Dialog = dialog
		return page
	})
}

func (h *AnimalHandler) page(c *gin.Context) view.Page {
	page := view.NewPage("Manage Animals", "animals", animalsPath)
	animals, err := h.service.ListAnimals(c.Request.Context())
	if err != nil {
		page.Region = view.ErrorRegion(view.AnimalsID, "Error: ", err)
	} else {
		page.Region = view.AnimalTable(animals)
	}
	return page
}

func (h *AnimalHandler) reject(c *gin.Context, text string) {
	h.pages.Reject(c, "animals.html", func() view.Page { return h.page(c) }, text)
}

// Create submits the add-animal form.
func (h *AnimalHandler) Create(c *gin.Context) {
	var req application.CreateAnimalRequest
	if err := c.ShouldBind(&req); err != nil {
		h.reject(c, "Error: "+bindMessage(err))
		return
	}

	id, err := h.service.CreateAnimal(c.Request.Context(), req)
	if err != nil {
		h.reject(c, errorText(err))
		return
	}
	h.pages.Success(c, animalsPath, fmt.Sprintf("Success! New animal added with ID: %d", id))
}

// Action dispatches the row buttons of the animal table.
func (h *AnimalHandler) Action(c *gin.Context) {
	switch c.PostForm("action") {
	case view.ActionDelete:
		h.delete(c)
	case view.ActionUpdate:
		h.rename(c)
	case view.ActionCancel:
		seeOther(c, animalsPath)
	default:
		h.pages.Failure(c, animalsPath, "Error: unknown action")
	}
}

func (h *AnimalHandler) delete(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.pages.Acknowledge(c, animalsPath, notify.KindError, "Error deleting animal: "+err.Error())
		return
	}
	name := c.PostForm("name")

	if !confirmed(c) {
		h.render(c, view.ConfirmDialog(animalsPath+"/actions", view.ActionDelete,
			fmt.Sprintf("Are you sure you want to delete %s (ID %d)?", name, id),
			rowFields(c, "id", "name")))
		return
	}

	if err := h.service.DeleteAnimal(c.Request.Context(), id); err != nil {
		h.pages.Acknowledge(c, animalsPath, notify.KindError, "Error deleting animal: "+httpclient.Message(err))
		return
	}
	h.pages.Acknowledge(c, animalsPath, notify.KindSuccess, fmt.Sprintf("%s (ID %d) deleted successfully.", name, id))
}

func (h *AnimalHandler) rename(c *gin.Context) {
	id, err := formInt(c, "id")
	if err != nil {
		h.pages.Acknowledge(c, animalsPath, notify.KindError, "Error updating animal: "+err.Error())
		return
	}
	current := c.PostForm("name")

	if !confirmed(c) {
		h.render(c, view.PromptDialog(animalsPath+"/actions", view.ActionUpdate,
			fmt.Sprintf("Enter new name for Animal ID %d:", id),
			rowFields(c, "id", "name"),
			view.Prompt{Name: "new_name", Label: "New name", Value: current}))
		return
	}

	newName := c.PostForm("new_name")
	sent, err := h.service.RenameAnimal(c.Request.Context(), id, current, newName)
	switch {
	case err != nil:
		h.pages.Acknowledge(c, animalsPath, notify.KindError, "Error updating animal: "+httpclient.Message(err))
	case !sent:
		seeOther(c, animalsPath)
	default:
		h.pages.Acknowledge(c, animalsPath, notify.KindSuccess, fmt.Sprintf("Animal ID %d name updated to %s.", id, newName))
	}
}
