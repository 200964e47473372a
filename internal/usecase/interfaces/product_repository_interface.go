package interfaces

import (
	"context"

	"hoa_stickers/internal/domain/entities"
)

// IProductRepository persists sticker products. Same not-found and ordering
// conventions as IResidentRepository.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	ListActive(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
