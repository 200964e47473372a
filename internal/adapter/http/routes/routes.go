package routes

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	_ "hoa_stickers/docs"
	"hoa_stickers/internal/adapter/http/handlers"
	"hoa_stickers/internal/adapter/http/middleware"
	"hoa_stickers/internal/adapter/http/web"
	"hoa_stickers/internal/config"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase"
	"hoa_stickers/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Handlers is everything the router dispatches to.
type Handlers struct {
	Residents   *handlers.ResidentHandler
	Products    *handlers.ProductHandler
	Purchases   *handlers.PurchaseHandler
	Reports     *handlers.ReportHandler
	Auth        *handlers.AuthHandler
	Pages       *web.Pages
	AuthUseCase usecase.IAuthUseCase
	CookieName  string
}

// Run will start the server
func Run() {
	cfg, err := config.LoadFromEnv(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to start the application", "err", err)
		os.Exit(1)
	}
	defer a.Close()

	h, err := a.handlers()
	if err != nil {
		slog.Error("failed to load page templates", "err", err)
		os.Exit(1)
	}

	setMiddlewares(router, a.metrics)
	getRoutes(router, h)

	slog.Info("listening", "port", cfg.Server.Port, "store", a.store.Backend(), "auth_configured", cfg.AuthConfigured())
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		slog.Error("failed to startup the application", "err", err)
	}
}

func getRoutes(r *gin.Engine, h Handlers) {
	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addAPIRoutes(v1, h)

	addWebRoutes(r, h)
}

func setMiddlewares(r *gin.Engine, m *metrics.Metrics) {
	r.Use(middleware.RequestLogger(m))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(500)
	}))
}
