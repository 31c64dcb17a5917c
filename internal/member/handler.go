package member

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gymadmin/internal/api"
	"gymadmin/internal/logger"
	"gymadmin/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		service: service,
		now:     now,
	}
}

// JoinForm renders the public registration form.
func (h *Handler) JoinForm(c *gin.Context) {
	c.HTML(http.StatusOK, "join.html", gin.H{
		"plans":   Plans(),
		"notices": api.ConsumeFlash(c),
	})
}

// JoinSubmit registers a new member and hands control to the payment page.
func (h *Handler) JoinSubmit(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBind(&req); err != nil {
		api.SetFlashError(c, "Invalid registration data")
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	m, err := h.service.Join(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to register member: %v", err)
		api.SetFlashError(c, "Registration failed, please try again")
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	metrics.RecordJoin(m.Plan)
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/payment/%d", m.ID))
}

// List renders the admin member table with optional search or batch filter.
func (h *Handler) List(c *gin.Context) {
	search := c.Query("search")
	batch := c.Query("batch")

	members, err := h.service.List(c.Request.Context(), search, batch)
	if err != nil {
		logger.Errorf("Failed to list members: %v", err)
		members = []Member{}
	}

	c.HTML(http.StatusOK, "admin-members.html", gin.H{
		"members": members,
		"search":  search,
		"batch":   batch,
		"today":   DateOnly(h.now()),
		"plans":   Plans(),
		"notices": api.ConsumeFlash(c),
	})
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid member ID")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.SetFlashError(c, "Member not found")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	c.HTML(http.StatusOK, "edit-member.html", gin.H{
		"member":  m,
		"plans":   Plans(),
		"notices": api.ConsumeFlash(c),
	})
}

func (h *Handler) Update(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBind(&req); err != nil || req.ID == 0 {
		api.SetFlashError(c, "Invalid member data")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			api.SetFlashError(c, "Member not found")
		} else {
			logger.Errorf("Failed to update member %d: %v", req.ID, err)
			api.SetFlashError(c, "Failed to update member")
		}
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	api.SetFlashSuccess(c, "Member updated successfully")
	c.Redirect(http.StatusSeeOther, "/admin/members")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid member ID")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			api.SetFlashError(c, "Member not found")
		} else {
			logger.Errorf("Failed to delete member %d: %v", id, err)
			api.SetFlashError(c, "Failed to delete member")
		}
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	api.SetFlashSuccess(c, "Member deleted successfully")
	c.Redirect(http.StatusSeeOther, "/admin/members")
}

func (h *Handler) ToggleStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid member ID")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	m, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			api.SetFlashError(c, "Member not found")
		} else {
			logger.Errorf("Failed to toggle member %d: %v", id, err)
			api.SetFlashError(c, "Failed to change member status")
		}
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	status := "Inactive"
	if m.Active {
		status = "Active"
	}
	api.SetFlashSuccess(c, "Member status changed to "+status)
	c.Redirect(http.StatusSeeOther, "/admin/members")
}

func (h *Handler) Renew(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.SetFlashError(c, "Invalid member ID")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	var req RenewRequest
	if err := c.ShouldBind(&req); err != nil {
		api.SetFlashError(c, "Plan selection is required")
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	m, err := h.service.Renew(c.Request.Context(), id, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanRequired):
			api.SetFlashError(c, "Plan selection is required")
		case errors.Is(err, ErrMemberNotFound):
			api.SetFlashError(c, "Member not found")
		default:
			logger.Errorf("Failed to renew member %d: %v", id, err)
			api.SetFlashError(c, "Failed to renew membership")
		}
		c.Redirect(http.StatusSeeOther, "/admin/members")
		return
	}

	metrics.RecordRenewal(m.Plan)
	api.SetFlashSuccess(c, "Membership renewed successfully. Expires on "+m.ExpiryDate.Format("2006-01-02"))
	c.Redirect(http.StatusSeeOther, "/admin/members")
}
