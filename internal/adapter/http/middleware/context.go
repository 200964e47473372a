package middleware

import (
	"hoa_stickers/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "hoa.session"
	userKey    = "hoa.user"
)

// Session returns the browser session attached by RequireSection.
func Session(c *gin.Context) (entities.AuthSession, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.AuthSession{}, false
	}
	s, ok := v.(entities.AuthSession)
	return s, ok
}

// User returns the signed-in user from either the session cookie or the
// bearer token.
func User(c *gin.Context) (entities.AuthUser, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return entities.AuthUser{}, false
	}
	u, ok := v.(entities.AuthUser)
	return u, ok
}

func setSession(c *gin.Context, s entities.AuthSession) {
	c.Set(sessionKey, s)
	c.Set(userKey, s.User)
}

func setUser(c *gin.Context, u entities.AuthUser) {
	c.Set(userKey, u)
}
