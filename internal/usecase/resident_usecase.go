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
	"golang.org/x/sync/errgroup"
)

var (
	ErrResidentNotFound  = errors.New("resident not found")
	ErrInvalidResidentID = errors.New("invalid resident id")
	ErrInvalidResident   = errors.New("invalid resident")
)

// ResidentInput carries the resident form fields. All of them are required.
type ResidentInput struct {
	Name  string
	Phase string
	Block string
	Lot   string
}

func (in ResidentInput) normalize() (ResidentInput, error) {
	out := ResidentInput{
		Name:  strings.TrimSpace(in.Name),
		Phase: strings.TrimSpace(in.Phase),
		Block: strings.TrimSpace(in.Block),
		Lot:   strings.TrimSpace(in.Lot),
	}
	if out.Name == "" || out.Phase == "" || out.Block == "" || out.Lot == "" {
		return ResidentInput{}, ErrInvalidResident
	}
	return out, nil
}

type IResidentUseCase interface {
	Register(ctx context.Context, in ResidentInput) (entities.Resident, error)
	Update(ctx context.Context, id string, in ResidentInput) (entities.Resident, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Resident, error)
	ListWithPurchases(ctx context.Context, filter entities.ResidentFilter) ([]entities.ResidentWithPurchases, error)
	PurchasesOf(ctx context.Context, residentID string) ([]entities.PurchaseDetail, error)
}

type ResidentUseCase struct {
	residents interfaces.IResidentRepository
	purchases interfaces.IPurchaseRepository
	cache     interfaces.IQueryCache
	metrics   *metrics.Metrics
}

var _ IResidentUseCase = (*ResidentUseCase)(nil)

func NewResidentUseCase(
	residents interfaces.IResidentRepository,
	purchases interfaces.IPurchaseRepository,
	cache interfaces.IQueryCache,
	m *metrics.Metrics,
) *ResidentUseCase {
	return &ResidentUseCase{residents: residents, purchases: purchases, cache: cache, metrics: m}
}

func (u *ResidentUseCase) Register(ctx context.Context, in ResidentInput) (entities.Resident, error) {
	in, err := in.normalize()
	if err != nil {
		return entities.Resident{}, err
	}

	r := entities.Resident{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phase:     in.Phase,
		Block:     in.Block,
		Lot:       in.Lot,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.residents.Create(ctx, r)
	if err != nil {
		slog.Error("resident create failed", "err", err)
		return entities.Resident{}, err
	}

	invalidate(ctx, u.cache, KeyResidentsWithPurchases)
	u.metrics.IncrementResidentRegistered()
	slog.Info("resident registered", "resident_id", created.ID)
	return created, nil
}

func (u *ResidentUseCase) Update(ctx context.Context, id string, in ResidentInput) (entities.Resident, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Resident{}, ErrInvalidResidentID
	}
	in, err := in.normalize()
	if err != nil {
		return entities.Resident{}, err
	}

	updated, err := u.residents.Update(ctx, entities.Resident{
		ID:    id,
		Name:  in.Name,
		Phase: in.Phase,
		Block: in.Block,
		Lot:   in.Lot,
	})
	if err != nil {
		slog.Error("resident update failed", "resident_id", id, "err", err)
		return entities.Resident{}, err
	}
	if updated.ID == "" {
		return entities.Resident{}, ErrResidentNotFound
	}

	invalidate(ctx, u.cache,
		KeyResidentsWithPurchases,
		residentKey(id),
		residentPurchasesKey(id),
		KeyAllPurchases,
		KeyPurchasesWithProducts,
	)
	return updated, nil
}

func (u *ResidentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidResidentID
	}

	found, err := u.residents.Delete(ctx, id)
	if err != nil {
		slog.Error("resident delete failed", "resident_id", id, "err", err)
		return err
	}
	if !found {
		return ErrResidentNotFound
	}

	invalidate(ctx, u.cache,
		KeyResidentsWithPurchases,
		residentKey(id),
		residentPurchasesKey(id),
		KeyAllPurchases,
		KeyPurchasesWithProducts,
	)
	return nil
}

func (u *ResidentUseCase) GetByID(ctx context.Context, id string) (entities.Resident, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Resident{}, ErrInvalidResidentID
	}

	return cachedQuery(ctx, u.cache, u.metrics, residentKey(id), func(ctx context.Context) (entities.Resident, error) {
		r, err := u.residents.GetByID(ctx, id)
		if err != nil {
			return entities.Resident{}, err
		}
		if r.ID == "" {
			return entities.Resident{}, ErrResidentNotFound
		}
		return r, nil
	})
}

// ListWithPurchases fetches the filtered residents and all purchases together
// and attaches each purchase to its resident.
func (u *ResidentUseCase) ListWithPurchases(ctx context.Context, filter entities.ResidentFilter) ([]entities.ResidentWithPurchases, error) {
	filter = entities.ResidentFilter{
		Phase: strings.TrimSpace(filter.Phase),
		Block: strings.TrimSpace(filter.Block),
		Lot:   strings.TrimSpace(filter.Lot),
	}

	return cachedQuery(ctx, u.cache, u.metrics, residentsWithPurchasesKey(filter), func(ctx context.Context) ([]entities.ResidentWithPurchases, error) {
		var (
			residents []entities.Resident
			purchases []entities.PurchaseDetail
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			residents, err = u.residents.List(gctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			purchases, err = u.purchases.ListDetailed(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			slog.Error("resident list failed", "err", err)
			return nil, err
		}

		byResident := make(map[string][]entities.PurchaseDetail, len(residents))
		for _, p := range purchases {
			byResident[p.ResidentID] = append(byResident[p.ResidentID], p)
		}

		out := make([]entities.ResidentWithPurchases, 0, len(residents))
		for _, r := range residents {
			ps := byResident[r.ID]
			if ps == nil {
				ps = []entities.PurchaseDetail{}
			}
			out = append(out, entities.ResidentWithPurchases{Resident: r, Purchases: ps})
		}
		return out, nil
	})
}

func (u *ResidentUseCase) PurchasesOf(ctx context.Context, residentID string) ([]entities.PurchaseDetail, error) {
	residentID = strings.TrimSpace(residentID)
	if residentID == "" {
		return nil, ErrInvalidResidentID
	}

	return cachedQuery(ctx, u.cache, u.metrics, residentPurchasesKey(residentID), func(ctx context.Context) ([]entities.PurchaseDetail, error) {
		ps, err := u.purchases.ListDetailedByResident(ctx, residentID)
		if err != nil {
			slog.Error("resident purchases failed", "resident_id", residentID, "err", err)
			return nil, err
		}
		if ps == nil {
			ps = []entities.PurchaseDetail{}
		}
		return ps, nil
	})
}
