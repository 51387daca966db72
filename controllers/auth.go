package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/middlewares"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/CPU-commits/Intranet_BDirectorio/smaps"
	"github.com/CPU-commits/Intranet_BDirectorio/views"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AuthController struct {
	auth         *services.AuthService
	sessions     *services.SessionService
	secureCookie bool
}

func NewAuthController(
	auth *services.AuthService,
	sessions *services.SessionService,
	secureCookie bool,
) *AuthController {
	return &AuthController{
		auth:         auth,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

func (a *AuthController) renderLogin(c *gin.Context, status int, correo, message string) {
	c.HTML(status, "login.html", &smaps.LoginMap{
		CSRFToken: c.GetString(middlewares.CSRF_KEY),
		Correo:    correo,
		Error:     message,
	})
}

func (a *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SESSION_COOKIE, value, maxAge, "/", "", a.secureCookie, true)
}

func (a *AuthController) LoginForm(c *gin.Context) {
	a.renderLogin(c, http.StatusOK, "", "")
}

func (a *AuthController) Login(c *gin.Context) {
	form := &forms.LoginForm{}
	if err := c.Request.ParseForm(); err == nil {
		binding.MapFormWithTag(form, c.Request.PostForm, "form")
	}
	token, err := a.auth.Login(form)
	if err != nil {
		if err.StatusCode != http.StatusUnauthorized {
			views.RenderError(c, err.StatusCode)
			return
		}
		a.renderLogin(c, err.StatusCode, form.Correo, services.MSG_LOGIN_FAILED)
		return
	}
	a.setSessionCookie(c, token, int(a.sessions.TTL().Seconds()))
	c.Redirect(http.StatusFound, services.LIST_PATH)
}

func (a *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middlewares.SESSION_COOKIE); err == nil {
		a.auth.Logout(token)
	}
	a.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, middlewares.LOGIN_PATH)
}
