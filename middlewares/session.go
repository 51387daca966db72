package middlewares

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/gin-gonic/gin"
)

const (
	SESSION_COOKIE = "directorio_session"
	USUARIO_KEY    = "usuario"
	LOGIN_PATH     = "/login"
)

// SessionGuard lets the request through only with a live session, otherwise
// it redirects to the login form.
func SessionGuard(sessions *services.SessionService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, _ := ctx.Cookie(SESSION_COOKIE)
		session, err := sessions.Resolve(token)
		if err != nil {
			ctx.Redirect(http.StatusFound, LOGIN_PATH)
			ctx.Abort()
			return
		}
		ctx.Set(USUARIO_KEY, session.Usuario)
		ctx.Next()
	}
}
