package interfaces

import (
	"context"

	"hoa_stickers/internal/domain/entities"
)

// IPurchaseRepository persists purchases and serves the joined transaction view,
// ordered by purchase_date, newest first.
type IPurchaseRepository interface {
	Create(ctx context.Context, p entities.Purchase) (entities.Purchase, error)
	ListDetailed(ctx context.Context) ([]entities.PurchaseDetail, error)
	ListDetailedByResident(ctx context.Context, residentID string) ([]entities.PurchaseDetail, error)
}
