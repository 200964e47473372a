package usecase

import (
	"context"
	"log/slog"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/domain/report"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"
)

type IReportUseCase interface {
	Transactions(ctx context.Context) (report.Summary, error)
}

type ReportUseCase struct {
	purchases interfaces.IPurchaseRepository
	cache     interfaces.IQueryCache
	metrics   *metrics.Metrics
	location  *time.Location
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase buckets months in loc; nil means UTC.
func NewReportUseCase(purchases interfaces.IPurchaseRepository, cache interfaces.IQueryCache, m *metrics.Metrics, loc *time.Location) *ReportUseCase {
	return &ReportUseCase{purchases: purchases, cache: cache, metrics: m, location: loc}
}

// Transactions summarizes every purchase joined with its product.
func (u *ReportUseCase) Transactions(ctx context.Context) (report.Summary, error) {
	rows, err := cachedQuery(ctx, u.cache, u.metrics, KeyPurchasesWithProducts, func(ctx context.Context) ([]entities.PurchaseDetail, error) {
		ps, err := u.purchases.ListDetailed(ctx)
		if err != nil {
			slog.Error("transaction report query failed", "err", err)
			return nil, err
		}
		return nonNil(ps), nil
	})
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(rows, u.location), nil
}
