package api

import "github.com/gin-gonic/gin"

// Flash notices are one-shot messages carried across a redirect in short-lived
// cookies and consumed by the next rendered page.

const (
	flashSuccessCookie = "flash_success"
	flashErrorCookie   = "flash_error"

	flashMaxAge = 60 // seconds; a notice only has to survive one redirect
)

type Notices struct {
	Success string
	Error   string
}

func SetFlashSuccess(c *gin.Context, msg string) {
	c.SetCookie(flashSuccessCookie, msg, flashMaxAge, "/", "", false, true)
}

func SetFlashError(c *gin.Context, msg string) {
	c.SetCookie(flashErrorCookie, msg, flashMaxAge, "/", "", false, true)
}

// ConsumeFlash reads any pending notices and clears their cookies.
func ConsumeFlash(c *gin.Context) Notices {
	var n Notices
	if v, err := c.Cookie(flashSuccessCookie); err == nil && v != "" {
		n.Success = v
		c.SetCookie(flashSuccessCookie, "", -1, "/", "", false, true)
	}
	if v, err := c.Cookie(flashErrorCookie); err == nil && v != "" {
		n.Error = v
		c.SetCookie(flashErrorCookie, "", -1, "/", "", false, true)
	}
	return n
}
