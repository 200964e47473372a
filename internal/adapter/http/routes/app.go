package routes

import (
	"context"
	"log/slog"

	"hoa_stickers/internal/adapter/cache"
	"hoa_stickers/internal/adapter/http/handlers"
	"hoa_stickers/internal/adapter/http/web"
	"hoa_stickers/internal/adapter/persistence"
	"hoa_stickers/internal/adapter/session"
	"hoa_stickers/internal/config"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/infrastructure/auth"
	"hoa_stickers/internal/infrastructure/database"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/infrastructure/payments"
	"hoa_stickers/internal/usecase"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// app owns the long lived dependencies of the server.
type app struct {
	cfg     *config.Config
	metrics *metrics.Metrics
	store   *persistence.Store
	redis   *redis.Client
	events  *auth.Broadcaster
	stopLog func()

	residents *usecase.ResidentUseCase
	products  *usecase.ProductUseCase
	purchases *usecase.PurchaseUseCase
	reports   *usecase.ReportUseCase
	auth      *usecase.AuthUseCase
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, metrics: metrics.New()}

	reportLoc, err := cfg.Report.Location()
	if err != nil {
		return nil, err
	}

	store, err := persistence.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	a.store = store

	var (
		queryCache interfaces.IQueryCache   = cache.NoopCache{}
		sessions   interfaces.ISessionStore = session.NewMemoryStore()
	)
	if cfg.Redis.URL != "" {
		client, err := database.ConnectRedis(ctx, cfg.Redis.URL)
		if err != nil {
			slog.Warn("redis unavailable, using in-memory sessions and no query cache", "err", err)
		} else {
			a.redis = client
			queryCache = cache.NewRedisCache(client, cfg.Redis.CacheTTL)
			sessions = session.NewRedisStore(client)
		}
	}

	gateway, err := payments.NewGateway(cfg.Payments)
	if err != nil {
		slog.Warn("payment gateway not configured, card payments disabled", "err", err)
	}

	if !cfg.AuthConfigured() {
		slog.Warn("SUPABASE_URL or SUPABASE_ANON_KEY missing, every visitor is signed out")
	}
	a.events = auth.NewBroadcaster()
	a.stopLog = a.events.Subscribe(func(event entities.AuthEvent, s *entities.AuthSession) {
		if s != nil {
			slog.Debug("session change", "event", event, "user_id", s.User.ID)
			return
		}
		slog.Debug("session change", "event", event)
	})

	a.residents = usecase.NewResidentUseCase(store.Residents, store.Purchases, queryCache, a.metrics)
	a.products = usecase.NewProductUseCase(store.Products, queryCache, a.metrics)
	a.purchases = usecase.NewPurchaseUseCase(store.Purchases, store.Residents, store.Products, gateway, queryCache, a.metrics)
	a.reports = usecase.NewReportUseCase(store.Purchases, queryCache, a.metrics, reportLoc)
	a.auth = usecase.NewAuthUseCase(auth.NewProvider(cfg.Supabase), sessions, a.events, a.metrics, cfg.Session.TTL, cfg.Session.AuthInitTimeout)
	a.auth.Initialize(ctx)

	return a, nil
}

func (a *app) handlers() (Handlers, error) {
	pages, err := web.NewPages(a.residents, a.products, a.purchases, a.reports, a.auth, web.CookieConfig{
		Name:   a.cfg.Session.CookieName,
		TTL:    a.cfg.Session.TTL,
		Secure: a.cfg.Session.SecureCookie,
	})
	if err != nil {
		return Handlers{}, err
	}
	return Handlers{
		Residents:   handlers.NewResidentHandler(a.residents),
		Products:    handlers.NewProductHandler(a.products),
		Purchases:   handlers.NewPurchaseHandler(a.purchases),
		Reports:     handlers.NewReportHandler(a.reports),
		Auth:        handlers.NewAuthHandler(a.auth),
		Pages:       pages,
		AuthUseCase: a.auth,
		CookieName:  a.cfg.Session.CookieName,
	}, nil
}

func (a *app) Close() {
	if a.stopLog != nil {
		a.stopLog()
	}
	if a.events != nil {
		a.events.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("redis close failed", "err", err)
		}
	}
	if err := a.store.Close(); err != nil {
		slog.Warn("store close failed", "err", err)
	}
}
