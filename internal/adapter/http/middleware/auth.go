package middleware

import (
	"net/http"

	"hoa_stickers/internal/adapter/http/handlers"
	"hoa_stickers/internal/domain/guard"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequireSection guards a group of HTML pages. While the auth provider is
// still initializing the placeholder handler answers instead of a redirect.
func RequireSection(auth usecase.IAuthUseCase, cookieName string, section guard.Section, placeholder gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(cookieName)
		state, s := auth.State(c.Request.Context(), sid)

		d := guard.Decide(state, section)
		switch d.Action {
		case guard.ActionPlaceholder:
			placeholder(c)
			c.Abort()
		case guard.ActionRedirect:
			c.Redirect(http.StatusSeeOther, d.Location)
			c.Abort()
		default:
			if s.Authenticated() {
				setSession(c, s)
			}
			c.Next()
		}
	}
}

// RequireBearer protects the JSON API with the provider's access token.
func RequireBearer(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := auth.VerifyAccessToken(c.Request.Context(), handlers.BearerToken(c))
		if err != nil {
			appErr := handlers.MapError(err)
			if appErr.HTTPStatus == http.StatusInternalServerError {
				appErr = handlers.MapError(usecase.ErrMissingToken)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		setUser(c, u)
		c.Next()
	}
}
