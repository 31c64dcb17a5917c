package server

import (
	"net/http"

	"gymadmin/internal/api"
	"gymadmin/internal/auth"
	"gymadmin/internal/logger"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// AdminAuth checks the single configured admin credential and manages the
// session cookie. The password is bcrypt-hashed once at startup.
type AdminAuth struct {
	username     string
	passwordHash string
	jwtSecret    string
}

func NewAdminAuth(username, password, jwtSecret string) (*AdminAuth, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AdminAuth{
		username:     username,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
	}, nil
}

func (a *AdminAuth) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin-login.html", gin.H{
		"notices": api.ConsumeFlash(c),
	})
}

func (a *AdminAuth) Login(c *gin.Context) {
	var f loginForm
	if err := c.ShouldBind(&f); err != nil {
		api.SetFlashError(c, "Invalid login request")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	if f.Username != a.username || !auth.CheckPassword(a.passwordHash, f.Password) {
		api.SetFlashError(c, "Invalid username or password")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	token, err := auth.GenerateSessionToken(f.Username, auth.RoleAdmin, a.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to issue session token: %v", err)
		api.SetFlashError(c, "Login failed, please try again")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (a *AdminAuth) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	api.SetFlashSuccess(c, "You have been logged out")
	c.Redirect(http.StatusSeeOther, "/admin/login")
}
