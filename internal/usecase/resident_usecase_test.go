package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hoa_stickers/internal/domain/entities"
	mock_interfaces "hoa_stickers/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestResidentUseCase_Register(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		uc := NewResidentUseCase(nil, nil, nil, nil)
		_, err := uc.Register(context.Background(), ResidentInput{Name: "Ana", Phase: "1", Block: " ", Lot: "3"})
		if !errors.Is(err, ErrInvalidResident) {
			t.Fatalf("expected ErrInvalidResident, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		uc := NewResidentUseCase(repo, nil, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Resident{}, errors.New("db"))

		_, err := uc.Register(context.Background(), ResidentInput{Name: "Ana", Phase: "1", Block: "2", Lot: "3"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success trims and invalidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(repo, nil, cache, nil)

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Resident) (entities.Resident, error) {
				if r.ID == "" {
					t.Fatalf("expected generated id")
				}
				if r.Name != "Ana Souza" || r.Phase != "1" || r.Block != "2" || r.Lot != "3" {
					t.Fatalf("unexpected resident %+v", r)
				}
				if r.CreatedAt.IsZero() || r.CreatedAt.Location() != time.UTC {
					t.Fatalf("expected UTC created_at")
				}
				return r, nil
			}),
			cache.EXPECT().Invalidate(gomock.Any(), KeyResidentsWithPurchases).Return(nil),
		)

		got, err := uc.Register(context.Background(), ResidentInput{Name: "  Ana Souza ", Phase: "1", Block: "2", Lot: "3"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != "Ana Souza" {
			t.Fatalf("unexpected name %q", got.Name)
		}
	})
}

func TestResidentUseCase_Update(t *testing.T) {
	in := ResidentInput{Name: "Ana", Phase: "1", Block: "2", Lot: "3"}

	t.Run("empty id", func(t *testing.T) {
		uc := NewResidentUseCase(nil, nil, nil, nil)
		_, err := uc.Update(context.Background(), " ", in)
		if !errors.Is(err, ErrInvalidResidentID) {
			t.Fatalf("expected ErrInvalidResidentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		uc := NewResidentUseCase(repo, nil, nil, nil)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Resident{}, nil)

		_, err := uc.Update(context.Background(), "r1", in)
		if !errors.Is(err, ErrResidentNotFound) {
			t.Fatalf("expected ErrResidentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(repo, nil, cache, nil)

		repo.EXPECT().Update(gomock.Any(), entities.Resident{ID: "r1", Name: "Ana", Phase: "1", Block: "2", Lot: "3"}).
			Return(entities.Resident{ID: "r1", Name: "Ana", Phase: "1", Block: "2", Lot: "3"}, nil)
		cache.EXPECT().Invalidate(gomock.Any(),
			KeyResidentsWithPurchases, "resident:r1", "residentPurchases:r1", KeyAllPurchases, KeyPurchasesWithProducts,
		).Return(nil)

		got, err := uc.Update(context.Background(), "r1", in)
		if err != nil || got.ID != "r1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestResidentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		uc := NewResidentUseCase(repo, nil, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "r1").Return(false, nil)

		if err := uc.Delete(context.Background(), "r1"); !errors.Is(err, ErrResidentNotFound) {
			t.Fatalf("expected ErrResidentNotFound, got %v", err)
		}
	})

	t.Run("cache failure does not fail delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(repo, nil, cache, nil)

		repo.EXPECT().Delete(gomock.Any(), "r1").Return(true, nil)
		cache.EXPECT().Invalidate(gomock.Any(),
			KeyResidentsWithPurchases, "resident:r1", "residentPurchases:r1", KeyAllPurchases, KeyPurchasesWithProducts,
		).Return(errors.New("redis down"))

		if err := uc.Delete(context.Background(), "r1"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestResidentUseCase_GetByID(t *testing.T) {
	t.Run("not found is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(repo, nil, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "resident:r1", gomock.Any()).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Resident{}, nil)

		_, err := uc.GetByID(context.Background(), "r1")
		if !errors.Is(err, ErrResidentNotFound) {
			t.Fatalf("expected ErrResidentNotFound, got %v", err)
		}
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIResidentRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(repo, nil, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "resident:r1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*entities.Resident) = entities.Resident{ID: "r1", Name: "Ana"}
			return true, nil
		})

		got, err := uc.GetByID(context.Background(), "r1")
		if err != nil || got.Name != "Ana" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestResidentUseCase_ListWithPurchases(t *testing.T) {
	t.Run("attaches purchases to residents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		residents := mock_interfaces.NewMockIResidentRepository(ctrl)
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewResidentUseCase(residents, purchases, nil, nil)

		filter := entities.ResidentFilter{Phase: "1"}
		residents.EXPECT().List(gomock.Any(), filter).Return([]entities.Resident{{ID: "r2"}, {ID: "r1"}}, nil)
		purchases.EXPECT().ListDetailed(gomock.Any()).Return([]entities.PurchaseDetail{
			{Purchase: entities.Purchase{ID: "p3", ResidentID: "r1"}},
			{Purchase: entities.Purchase{ID: "p2", ResidentID: "r9"}},
			{Purchase: entities.Purchase{ID: "p1", ResidentID: "r1"}},
		}, nil)

		got, err := uc.ListWithPurchases(context.Background(), entities.ResidentFilter{Phase: " 1 "})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 2 || got[0].ID != "r2" || got[1].ID != "r1" {
			t.Fatalf("unexpected residents %+v", got)
		}
		if got[0].Purchases == nil || len(got[0].Purchases) != 0 {
			t.Fatalf("expected empty purchase list for r2")
		}
		if len(got[1].Purchases) != 2 || got[1].Purchases[0].ID != "p3" || got[1].Purchases[1].ID != "p1" {
			t.Fatalf("unexpected purchases for r1 %+v", got[1].Purchases)
		}
	})

	t.Run("purchase query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		residents := mock_interfaces.NewMockIResidentRepository(ctrl)
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewResidentUseCase(residents, purchases, nil, nil)

		residents.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Resident{{ID: "r1"}}, nil).AnyTimes()
		purchases.EXPECT().ListDetailed(gomock.Any()).Return(nil, errors.New("timeout"))

		if _, err := uc.ListWithPurchases(context.Background(), entities.ResidentFilter{}); err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("served from cache with filter key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(nil, nil, cache, nil)

		cache.EXPECT().Get(gomock.Any(), "residentsWithPurchases:1|B|", gomock.Any()).Return(true, nil)

		if _, err := uc.ListWithPurchases(context.Background(), entities.ResidentFilter{Phase: "1", Block: "B"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestResidentUseCase_PurchasesOf(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewResidentUseCase(nil, nil, nil, nil)
		if _, err := uc.PurchasesOf(context.Background(), ""); !errors.Is(err, ErrInvalidResidentID) {
			t.Fatalf("expected ErrInvalidResidentID, got %v", err)
		}
	})

	t.Run("caches result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		cache := mock_interfaces.NewMockIQueryCache(ctrl)
		uc := NewResidentUseCase(nil, purchases, cache, nil)

		rows := []entities.PurchaseDetail{{Purchase: entities.Purchase{ID: "p1", ResidentID: "r1"}}}
		cache.EXPECT().Get(gomock.Any(), "residentPurchases:r1", gomock.Any()).Return(false, nil)
		purchases.EXPECT().ListDetailedByResident(gomock.Any(), "r1").Return(rows, nil)
		cache.EXPECT().Set(gomock.Any(), "residentPurchases:r1", rows).Return(nil)

		got, err := uc.PurchasesOf(context.Background(), "r1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}
