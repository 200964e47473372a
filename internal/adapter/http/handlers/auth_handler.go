package handlers

import (
	"net/http"
	"strings"

	request "hoa_stickers/internal/adapter/http/dto/request"
	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the hosted auth provider to API clients.
// Browser sign in goes through the HTML pages and a session cookie instead.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignIn godoc
// @Summary      Exchange email and password for provider tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.SignInRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	_, s, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// SignUp godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.SignUpRequest  true  "Credentials"
// @Success      201   {object}  response.UserResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	u, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(u))
}

// SignOut godoc
// @Summary      Revoke the bearer token
// @Tags         auth
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.usecase.RevokeAccessToken(c.Request.Context(), BearerToken(c)); err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
