package payment

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"gymadmin/internal/api"
	"gymadmin/internal/logger"
	"gymadmin/internal/member"
	"gymadmin/internal/metrics"

	"github.com/gin-gonic/gin"
)

// ConfirmationMailer queues the post-payment notification. Queue failures are
// logged, never surfaced: the payment already happened.
type ConfirmationMailer interface {
	SendPaymentConfirmation(ctx context.Context, to, name, plan string, amount float64) error
}

type Handler struct {
	service Service
	mailer  ConfirmationMailer
}

func NewHandler(service Service, mailer ConfirmationMailer) *Handler {
	return &Handler{
		service: service,
		mailer:  mailer,
	}
}

// Page renders the payment form for a freshly joined member, with the amount
// derived from their plan.
func (h *Handler) Page(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberId"))
	if err != nil {
		api.SetFlashError(c, "Invalid member ID")
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	m, amount, err := h.service.Quote(c.Request.Context(), memberID)
	if err != nil {
		api.SetFlashError(c, "Member not found")
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	c.HTML(http.StatusOK, "payment.html", gin.H{
		"member":  m,
		"amount":  amount,
		"notices": api.ConsumeFlash(c),
	})
}

// Process records the payment and activates the membership. There is no
// gateway behind this; the record insert is the whole payment.
func (h *Handler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBind(&req); err != nil {
		api.SetFlashError(c, "Invalid payment data")
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	p, m, err := h.service.Process(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			api.SetFlashError(c, "Member not found")
		} else {
			logger.Errorf("Failed to process payment for member %d: %v", req.MemberID, err)
			api.SetFlashError(c, "Payment failed, please try again")
		}
		c.Redirect(http.StatusSeeOther, "/join")
		return
	}

	metrics.RecordPayment(p.Plan, p.PaymentMethod)
	logger.Infof("Payment processed: member=%d amount=%.2f txn=%s", p.MemberID, p.Amount, p.TransactionID)

	if h.mailer != nil && m.Email != "" {
		if err := h.mailer.SendPaymentConfirmation(c.Request.Context(), m.Email, m.Name, m.Plan, p.Amount); err != nil {
			logger.Errorf("Failed to queue payment confirmation for member %d: %v", m.ID, err)
		}
	}

	api.SetFlashSuccess(c, "Payment successful! Your membership is now active.")
	c.Redirect(http.StatusSeeOther, "/success")
}
