package equipment

import (
	"errors"
	"net/http"
	"strconv"

	"gymadmin/internal/api"
	"gymadmin/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) List(c *gin.Context) {
	items, totalUnits, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list equipment: %v", err)
		items = []Equipment{}
	}

	c.HTML(http.StatusOK, "admin-equipment.html", gin.H{
		"equipmentList":  items,
		"totalEquipment": totalUnits,
		"statuses":       Statuses(),
		"notices":        api.ConsumeFlash(c),
	})
}

func (h *Handler) Add(c *gin.Context) {
	var f Form
	if err := c.ShouldBind(&f); err != nil {
		api.SetFlashError(c, "Invalid equipment data")
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), f); err != nil {
		if errors.Is(err, ErrNameRequired) {
			api.SetFlashError(c, "Equipment name is required")
		} else {
			logger.Errorf("Failed to add equipment: %v", err)
			api.SetFlashError(c, "Failed to add equipment")
		}
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	api.SetFlashSuccess(c, "Equipment added successfully")
	c.Redirect(http.StatusSeeOther, "/admin/equipment")
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid equipment ID")
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	var f Form
	if err := c.ShouldBind(&f); err != nil {
		api.SetFlashError(c, "Invalid equipment data")
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, f); err != nil {
		switch {
		case errors.Is(err, ErrEquipmentNotFound):
			api.SetFlashError(c, "Equipment not found")
		case errors.Is(err, ErrNameRequired):
			api.SetFlashError(c, "Equipment name is required")
		default:
			logger.Errorf("Failed to update equipment %d: %v", id, err)
			api.SetFlashError(c, "Failed to update equipment")
		}
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	api.SetFlashSuccess(c, "Equipment updated successfully")
	c.Redirect(http.StatusSeeOther, "/admin/equipment")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid equipment ID")
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			api.SetFlashError(c, "Equipment not found")
		} else {
			logger.Errorf("Failed to delete equipment %d: %v", id, err)
			api.SetFlashError(c, "Failed to delete equipment")
		}
		c.Redirect(http.StatusSeeOther, "/admin/equipment")
		return
	}

	api.SetFlashSuccess(c, "Equipment deleted successfully")
	c.Redirect(http.StatusSeeOther, "/admin/equipment")
}
