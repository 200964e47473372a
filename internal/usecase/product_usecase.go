package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrProductInactive  = errors.New("product is not active")
)

type ProductInput struct {
	Name   entities.StickerName
	Color  entities.StickerColor
	Amount float64
	Active bool
}

func (in ProductInput) validate() error {
	if !in.Name.Valid() || !in.Color.Valid() || in.Amount <= 0 {
		return ErrInvalidProduct
	}
	return nil
}

// productQueries are the cached queries that embed product rows.
var productQueries = []string{
	KeyStickers,
	KeyAvailableProducts,
	KeyAllPurchases,
	KeyPurchasesWithProducts,
	KeyResidentsWithPurchases,
	KeyResidentPurchases,
}

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	ListActive(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo    interfaces.IProductRepository
	cache   interfaces.IQueryCache
	metrics *metrics.Metrics
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, cache interfaces.IQueryCache, m *metrics.Metrics) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: cache, metrics: m}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}

	p := entities.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Color:     in.Color,
		Amount:    in.Amount,
		Active:    in.Active,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		slog.Error("product create failed", "err", err)
		return entities.Product{}, err
	}

	invalidate(ctx, u.cache, productQueries...)
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}

	updated, err := u.repo.Update(ctx, entities.Product{
		ID:     id,
		Name:   in.Name,
		Color:  in.Color,
		Amount: in.Amount,
		Active: in.Active,
	})
	if err != nil {
		slog.Error("product update failed", "product_id", id, "err", err)
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	invalidate(ctx, u.cache, productQueries...)
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		slog.Error("product delete failed", "product_id", id, "err", err)
		return err
	}
	if !found {
		return ErrProductNotFound
	}

	invalidate(ctx, u.cache, productQueries...)
	return nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return cachedQuery(ctx, u.cache, u.metrics, KeyStickers, func(ctx context.Context) ([]entities.Product, error) {
		ps, err := u.repo.List(ctx)
		if err != nil {
			slog.Error("product list failed", "err", err)
			return nil, err
		}
		return nonNil(ps), nil
	})
}

func (u *ProductUseCase) ListActive(ctx context.Context) ([]entities.Product, error) {
	return cachedQuery(ctx, u.cache, u.metrics, KeyAvailableProducts, func(ctx context.Context) ([]entities.Product, error) {
		ps, err := u.repo.ListActive(ctx)
		if err != nil {
			slog.Error("active product list failed", "err", err)
			return nil, err
		}
		return nonNil(ps), nil
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
