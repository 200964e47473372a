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

func TestReportUseCase_Transactions(t *testing.T) {
	t.Run("summarizes joined purchases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewReportUseCase(purchases, nil, nil, time.UTC)

		tenant := &entities.Product{Name: entities.StickerTenant}
		purchases.EXPECT().ListDetailed(gomock.Any()).Return([]entities.PurchaseDetail{
			{Purchase: entities.Purchase{AmountPaid: 100, PurchaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, Product: tenant},
			{Purchase: entities.Purchase{AmountPaid: 50, PurchaseDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)}, Product: tenant},
		}, nil)

		s, err := uc.Transactions(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if s.Totals.TotalRevenue != 150 || s.Totals.TotalTransactions != 2 || s.Totals.AverageTransaction != 75 {
			t.Fatalf("unexpected totals %+v", s.Totals)
		}
		if s.Totals.TopSticker != "Tenant" || len(s.MonthlyIncome) != 1 || s.MonthlyIncome[0].Month != "2024-03" {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewReportUseCase(purchases, nil, nil, time.UTC)

		purchases.EXPECT().ListDetailed(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Transactions(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewReportUseCase(purchases, nil, nil, time.UTC)

		purchases.EXPECT().ListDetailed(gomock.Any()).Return(nil, nil)

		s, err := uc.Transactions(context.Background())
		if err != nil || s.Totals.TopSticker != "N/A" || s.Totals.AverageTransaction != 0 {
			t.Fatalf("unexpected summary %+v err=%v", s, err)
		}
	})

	t.Run("buckets months in the report location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewReportUseCase(purchases, nil, nil, time.FixedZone("PHT", 8*60*60))

		purchases.EXPECT().ListDetailed(gomock.Any()).Return([]entities.PurchaseDetail{
			{Purchase: entities.Purchase{AmountPaid: 500, PurchaseDate: time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)}},
		}, nil)

		s, err := uc.Transactions(context.Background())
		if err != nil || len(s.MonthlyIncome) != 1 || s.MonthlyIncome[0].Month != "2024-03" {
			t.Fatalf("expected March in Manila, got %+v err=%v", s.MonthlyIncome, err)
		}
	})
}
