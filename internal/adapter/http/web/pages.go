// Package web serves the admin UI as server rendered HTML.
//
// Every mutation answers with a 303 redirect once it succeeded, so a reload
// never re-submits a form. Failures re-render the form with an inline banner
// and per-field messages.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"hoa_stickers/internal/adapter/http/handlers"
	"hoa_stickers/internal/adapter/http/middleware"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"
	"hoa_stickers/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// CookieConfig describes the session cookie handed to the browser.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Pages struct {
	residents usecase.IResidentUseCase
	products  usecase.IProductUseCase
	purchases usecase.IPurchaseUseCase
	reports   usecase.IReportUseCase
	auth      usecase.IAuthUseCase
	cookie    CookieConfig
	views     map[string]*template.Template
}

func NewPages(
	residents usecase.IResidentUseCase,
	products usecase.IProductUseCase,
	purchases usecase.IPurchaseUseCase,
	reports usecase.IReportUseCase,
	auth usecase.IAuthUseCase,
	cookie CookieConfig,
) (*Pages, error) {
	views, err := parseViews()
	if err != nil {
		return nil, err
	}
	return &Pages{
		residents: residents,
		products:  products,
		purchases: purchases,
		reports:   reports,
		auth:      auth,
		cookie:    cookie,
		views:     views,
	}, nil
}

// view is what every template receives. Data holds the page specific model.
type view struct {
	Title    string
	Path     string
	User     entities.AuthUser
	SignedIn bool
	Error    string
	Notice   string
	Fields   map[string]string
	Data     any
}

// parseViews pairs the layout with each page so every page can define its
// own "content" block.
func parseViews() (map[string]*template.Template, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	views := make(map[string]*template.Template, len(files))
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(f, "templates/"), ".html")
		views[name] = t
	}
	return views, nil
}

func (p *Pages) render(c *gin.Context, status int, name string, v view) {
	t, ok := p.views[name]
	if !ok {
		slog.Error("unknown view", "view", name)
		c.Status(http.StatusInternalServerError)
		return
	}
	v.Path = c.Request.URL.Path
	if u, ok := middleware.User(c); ok {
		v.User = u
		v.SignedIn = true
	}
	c.Render(status, render.HTML{Template: t, Name: "layout", Data: v})
}

// failure turns a bind or use case error into the banner, the field messages
// and the status the page is rendered with.
func failure(v *view, appErr *pkg.AppError) int {
	v.Error = appErr.Message
	v.Fields = appErr.Fields
	return appErr.HTTPStatus
}

func bindFailure(v *view, err error) int {
	return failure(v, handlers.BindError(err))
}

func useCaseFailure(v *view, err error) int {
	return failure(v, handlers.MapError(err))
}

func (p *Pages) seeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

var funcs = template.FuncMap{
	"money":    money,
	"date":     date,
	"deref":    deref,
	"fieldErr": fieldErr,
	"isTrue":   isTrue,
	"toJSON":   toJSON,
}

// money formats pesos with thousands separators, e.g. ₱1,250.00.
func money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	cents := int64(math.Round(v * 100))
	whole := fmt.Sprintf("%d", cents/100)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s₱%s.%02d", sign, b.String(), cents%100)
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func fieldErr(fields map[string]string, name string) string {
	return fields[name]
}

func toJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
