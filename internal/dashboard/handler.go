package dashboard

import (
	"net/http"
	"time"

	"gymadmin/internal/api"
	"gymadmin/internal/logger"
	"gymadmin/internal/member"

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

func (h *Handler) Show(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to compute dashboard stats: %v", err)
		stats = &Stats{}
	}

	c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
		"stats":   stats,
		"today":   member.DateOnly(h.now()),
		"notices": api.ConsumeFlash(c),
	})
}
