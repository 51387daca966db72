package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/views"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CSRF_COOKIE = "csrf_token"
	CSRF_FIELD  = "csrf_token"
	CSRF_KEY    = "csrf_token"
)

func isSafeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// CSRF implements the double-submit pattern: the cookie value must come back
// in the csrf_token field of every unsafe request.
func CSRF(secureCookie bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(CSRF_COOKIE)
		if err != nil || token == "" {
			token = uuid.NewString()
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(CSRF_COOKIE, token, 0, "/", "", secureCookie, true)
		}
		ctx.Set(CSRF_KEY, token)

		if !isSafeMethod(ctx.Request.Method) {
			sent := ctx.PostForm(CSRF_FIELD)
			if subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
				views.RenderError(ctx, http.StatusForbidden)
				return
			}
		}
		ctx.Next()
	}
}

// CSRFQuery guards state-changing GET links, which carry the token in the
// query string. Must run after CSRF.
func CSRFQuery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetString(CSRF_KEY)
		sent := ctx.Query(CSRF_FIELD)
		if token == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
			views.RenderError(ctx, http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
