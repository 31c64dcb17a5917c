package server

import (
	"net/http"

	"gymadmin/internal/api"
	"gymadmin/internal/email"
	"gymadmin/internal/logger"
	"gymadmin/internal/member"

	"github.com/gin-gonic/gin"
)

// Marketing pages. These just hand a data bag to the template layer.

func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"notices": api.ConsumeFlash(c),
	})
}

func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"notices": api.ConsumeFlash(c),
	})
}

func PlansPage(c *gin.Context) {
	plans := []gin.H{}
	for _, p := range member.Plans() {
		plans = append(plans, gin.H{
			"name":  p,
			"price": member.PlanPrice(p),
		})
	}
	c.HTML(http.StatusOK, "plans.html", gin.H{
		"plans":   plans,
		"notices": api.ConsumeFlash(c),
	})
}

func ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"notices": api.ConsumeFlash(c),
	})
}

func Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{
		"notices": api.ConsumeFlash(c),
	})
}

type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// ContactSubmit queues a notification to the front desk and thanks the sender.
func ContactSubmit(emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f contactForm
		if err := c.ShouldBind(&f); err != nil || f.Name == "" || f.Email == "" {
			api.SetFlashError(c, "Please fill in your name and email")
			c.Redirect(http.StatusSeeOther, "/contact")
			return
		}

		if emailService != nil {
			if err := emailService.SendContactNotification(c.Request.Context(), f.Name, f.Email, f.Phone, f.Subject, f.Message); err != nil {
				logger.Errorf("Failed to queue contact notification: %v", err)
			}
		}

		api.SetFlashSuccess(c, "Thank you for contacting us, "+f.Name+"! We'll get back to you soon.")
		c.Redirect(http.StatusSeeOther, "/contact")
	}
}
