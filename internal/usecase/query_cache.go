package usecase

import (
	"context"
	"log/slog"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"
)

// Query cache keys. Keyed variants append ":<id>" or ":<filters>".
const (
	KeyResidentsWithPurchases = "residentsWithPurchases"
	KeyResident               = "resident"
	KeyResidentPurchases      = "residentPurchases"
	KeyStickers               = "stickers"
	KeyAvailableProducts      = "availableProducts"
	KeyAllPurchases           = "allPurchases"
	KeyPurchasesWithProducts  = "purchasesWithProducts"
)

func residentsWithPurchasesKey(f entities.ResidentFilter) string {
	return KeyResidentsWithPurchases + ":" + f.Phase + "|" + f.Block + "|" + f.Lot
}

func residentKey(id string) string {
	return KeyResident + ":" + id
}

func residentPurchasesKey(id string) string {
	return KeyResidentPurchases + ":" + id
}

// cachedQuery serves key from cache or runs load and stores its result.
// Cache failures are logged and never fail the query.
func cachedQuery[T any](
	ctx context.Context,
	cache interfaces.IQueryCache,
	m *metrics.Metrics,
	key string,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if cache != nil {
		var hit T
		ok, err := cache.Get(ctx, key, &hit)
		switch {
		case err != nil:
			m.ObserveCache("error")
			slog.Warn("query cache read failed", "key", key, "err", err)
		case ok:
			m.ObserveCache("hit")
			return hit, nil
		default:
			m.ObserveCache("miss")
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, v); err != nil {
			slog.Warn("query cache write failed", "key", key, "err", err)
		}
	}
	return v, nil
}

// invalidate marks dependent queries stale. It runs after a mutation succeeded
// and before the caller responds.
func invalidate(ctx context.Context, cache interfaces.IQueryCache, prefixes ...string) {
	if cache == nil || len(prefixes) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, prefixes...); err != nil {
		slog.Warn("query cache invalidation failed", "prefixes", prefixes, "err", err)
	}
}
