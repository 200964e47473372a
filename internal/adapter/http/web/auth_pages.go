package web

import (
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	"hoa_stickers/internal/domain/guard"

	"github.com/gin-gonic/gin"
)

type authData struct {
	Email string
}

// Index is only reached when the guard let the request through, which it
// never does for the root path. Fall back to sign in.
func (p *Pages) Index(c *gin.Context) {
	p.seeOther(c, guard.SignInPath)
}

// Loading is the placeholder rendered while the auth provider initializes.
func (p *Pages) Loading(c *gin.Context) {
	p.render(c, http.StatusOK, "loading", view{Title: "Loading"})
}

func (p *Pages) About(c *gin.Context) {
	p.render(c, http.StatusOK, "about", view{Title: "About"})
}

func (p *Pages) SignInPage(c *gin.Context) {
	v := view{Title: "Sign in", Data: authData{}}
	if c.Query("registered") != "" {
		v.Notice = "Account created. Check your email to confirm it, then sign in."
	}
	p.render(c, http.StatusOK, "sign_in", v)
}

func (p *Pages) SignIn(c *gin.Context) {
	var form request.SignInRequest
	err := c.ShouldBind(&form)
	v := view{Title: "Sign in", Data: authData{Email: form.Email}}
	if err != nil {
		p.render(c, bindFailure(&v, err), "sign_in", v)
		return
	}

	sid, _, err := p.auth.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		p.render(c, useCaseFailure(&v, err), "sign_in", v)
		return
	}

	p.setSessionCookie(c, sid)
	p.seeOther(c, guard.HomePath)
}

func (p *Pages) SignUpPage(c *gin.Context) {
	p.render(c, http.StatusOK, "sign_up", view{Title: "Sign up", Data: authData{}})
}

func (p *Pages) SignUp(c *gin.Context) {
	var form request.SignUpRequest
	err := c.ShouldBind(&form)
	v := view{Title: "Sign up", Data: authData{Email: form.Email}}
	if err != nil {
		p.render(c, bindFailure(&v, err), "sign_up", v)
		return
	}

	if _, err := p.auth.SignUp(c.Request.Context(), form.Email, form.Password); err != nil {
		p.render(c, useCaseFailure(&v, err), "sign_up", v)
		return
	}
	p.seeOther(c, guard.SignInPath+"?registered=1")
}

// SignOut always clears the cookie, even when the provider call failed.
func (p *Pages) SignOut(c *gin.Context) {
	sid, _ := c.Cookie(p.cookie.Name)
	_ = p.auth.SignOut(c.Request.Context(), sid)
	p.clearSessionCookie(c)
	p.seeOther(c, guard.SignInPath)
}

func (p *Pages) Dashboard(c *gin.Context) {
	p.render(c, http.StatusOK, "dashboard", view{Title: "Dashboard"})
}

func (p *Pages) setSessionCookie(c *gin.Context, sid string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(p.cookie.Name, sid, int(p.cookie.TTL.Seconds()), "/", "", p.cookie.Secure, true)
}

func (p *Pages) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(p.cookie.Name, "", -1, "/", "", p.cookie.Secure, true)
}
