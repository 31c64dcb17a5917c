package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "gym_session"

// RequireAdmin guards the back-office routes. Browser clients get a redirect to
// the login form instead of a bare 401.
func RequireAdmin(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		claims, err := ValidateSessionToken(tokenString, jwtSecret)
		if err != nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		if claims.Role != RoleAdmin {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Username)
		c.Next()
	}
}

func GetAdminUser(c *gin.Context) (string, bool) {
	v, exists := c.Get("admin_user")
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
