package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase/interfaces"
	mock_interfaces "hoa_stickers/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validPurchaseInput() PurchaseInput {
	return PurchaseInput{
		ProductID:     "prod-1",
		DriverName:    "Carlos Lima",
		StickerNumber: "S-001",
		PlateNumber:   "ABC1D23",
		AFNumber:      "AF-77",
	}
}

func TestPurchaseUseCase_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewPurchaseUseCase(nil, nil, products, nil, nil, nil)

	products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Amount: 150, Active: true}, nil).Times(2)

	for _, tc := range []struct {
		penalty bool
		want    float64
	}{{false, 150}, {true, 300}} {
		got, err := uc.Quote(context.Background(), "prod-1", tc.penalty)
		if err != nil || got != tc.want {
			t.Fatalf("Quote(penalty=%v) = %v, %v; want %v", tc.penalty, got, err, tc.want)
		}
	}
}

func TestPurchaseUseCase_Purchase_Validations(t *testing.T) {
	t.Run("empty resident id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.Purchase(context.Background(), "", validPurchaseInput()); !errors.Is(err, ErrInvalidResidentID) {
			t.Fatalf("expected ErrInvalidResidentID, got %v", err)
		}
	})

	t.Run("missing plate number", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil, nil)
		in := validPurchaseInput()
		in.PlateNumber = "  "
		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrInvalidPurchase) {
			t.Fatalf("expected ErrInvalidPurchase, got %v", err)
		}
	})

	t.Run("unknown purchase type", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil, nil)
		in := validPurchaseInput()
		in.Type = "Replacement"
		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrInvalidPurchase) {
			t.Fatalf("expected ErrInvalidPurchase, got %v", err)
		}
	})

	t.Run("resident not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		residents := mock_interfaces.NewMockIResidentRepository(ctrl)
		uc := NewPurchaseUseCase(nil, residents, nil, nil, nil, nil)

		residents.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Resident{}, nil)

		if _, err := uc.Purchase(context.Background(), "r1", validPurchaseInput()); !errors.Is(err, ErrResidentNotFound) {
			t.Fatalf("expected ErrResidentNotFound, got %v", err)
		}
	})

	t.Run("inactive product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		residents := mock_interfaces.NewMockIResidentRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPurchaseUseCase(nil, residents, products, nil, nil, nil)

		residents.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Resident{ID: "r1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Amount: 10, Active: false}, nil)

		if _, err := uc.Purchase(context.Background(), "r1", validPurchaseInput()); !errors.Is(err, ErrProductInactive) {
			t.Fatalf("expected ErrProductInactive, got %v", err)
		}
	})
}

func TestPurchaseUseCase_Purchase_Amount(t *testing.T) {
	for _, tc := range []struct {
		name    string
		penalty bool
		want    float64
	}{
		{"base price", false, 150},
		{"penalty doubles price", true, 300},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
			residents := mock_interfaces.NewMockIResidentRepository(ctrl)
			products := mock_interfaces.NewMockIProductRepository(ctrl)
			cache := mock_interfaces.NewMockIQueryCache(ctrl)
			uc := NewPurchaseUseCase(purchases, residents, products, nil, cache, nil)

			residents.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Resident{ID: "r1"}, nil)
			products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Amount: 150, Active: true}, nil)

			// The form claimed a stale amount; the stored one is recomputed.
			stale := 1.0
			in := validPurchaseInput()
			in.Penalty = tc.penalty
			in.Company = "  "
			in.ContactNumber = "555-0101"
			in.SubmittedAmount = &stale

			gomock.InOrder(
				purchases.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Purchase) (entities.Purchase, error) {
					if p.AmountPaid != tc.want {
						t.Fatalf("expected amount %v, got %v", tc.want, p.AmountPaid)
					}
					if p.Type != entities.PurchaseTypeNew || p.PaymentMethod != entities.PaymentMethodCash {
						t.Fatalf("expected defaults, got type=%q method=%q", p.Type, p.PaymentMethod)
					}
					if p.Company != nil || p.DriverLicense != nil {
						t.Fatalf("expected blank optional fields to be nil")
					}
					if p.ContactNumber == nil || *p.ContactNumber != "555-0101" {
						t.Fatalf("expected contact number")
					}
					return p, nil
				}),
				cache.EXPECT().Invalidate(gomock.Any(),
					KeyResidentsWithPurchases, "residentPurchases:r1", KeyAllPurchases, KeyPurchasesWithProducts,
				).Return(nil),
			)

			got, err := uc.Purchase(context.Background(), "r1", in)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Penalty != tc.penalty {
				t.Fatalf("expected penalty %v", tc.penalty)
			}
		})
	}
}

func TestPurchaseUseCase_Purchase_Payment(t *testing.T) {
	setup := func(t *testing.T, withGateway bool) (*PurchaseUseCase, *mock_interfaces.MockIPurchaseRepository, *mock_interfaces.MockIPaymentGateway) {
		ctrl := gomock.NewController(t)
		purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		residents := mock_interfaces.NewMockIResidentRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		residents.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Resident{ID: "r1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", Name: entities.StickerTenant, Amount: 80, Active: true}, nil)

		if !withGateway {
			return NewPurchaseUseCase(purchases, residents, products, nil, nil, nil), purchases, gateway
		}
		return NewPurchaseUseCase(purchases, residents, products, gateway, nil, nil), purchases, gateway
	}

	t.Run("gateway not configured", func(t *testing.T) {
		uc, _, _ := setup(t, false)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago

		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("charged amount overrides payload", func(t *testing.T) {
		uc, purchases, gateway := setup(t, true)
		in := validPurchaseInput()
		in.Penalty = true
		in.PaymentMethod = entities.PaymentMethodMercadoPago
		in.PaymentPayload = json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if req["transaction_amount"] != 160.0 {
				t.Fatalf("expected transaction_amount 160, got %v", req["transaction_amount"])
			}
			if req["payment_method_id"] != "pix" || req["external_reference"] == "" {
				t.Fatalf("unexpected payload %v", req)
			}
			return "mp-42", "approved", json.RawMessage(`{}`), nil
		})
		purchases.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Purchase) (entities.Purchase, error) {
			return p, nil
		})

		got, err := uc.Purchase(context.Background(), "r1", in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.PaymentReference != "mp-42" || got.AmountPaid != 160 {
			t.Fatalf("unexpected purchase %+v", got)
		}
	})

	t.Run("rejected payment is not stored", func(t *testing.T) {
		uc, _, gateway := setup(t, true)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", json.RawMessage(`{}`), nil)

		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrPaymentRejected) {
			t.Fatalf("expected ErrPaymentRejected, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		uc, _, gateway := setup(t, true)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, fmt.Errorf("%w: invalid card", interfaces.ErrGatewayBadRequest))

		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		uc, _, gateway := setup(t, true)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, fmt.Errorf("%w: invalid token", interfaces.ErrGatewayUnauthorized))

		if _, err := uc.Purchase(context.Background(), "r1", in); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("unclassified gateway failure passes through", func(t *testing.T) {
		uc, _, gateway := setup(t, true)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request"}`))

		_, err := uc.Purchase(context.Background(), "r1", in)
		if err == nil || errors.Is(err, ErrPaymentRejected) {
			t.Fatalf("expected a plain gateway error, got %v", err)
		}
	})

	for _, status := range []string{"pending", "in_process", "authorized"} {
		t.Run(status+" payment is not stored", func(t *testing.T) {
			uc, _, gateway := setup(t, true)
			in := validPurchaseInput()
			in.PaymentMethod = entities.PaymentMethodMercadoPago

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", status, json.RawMessage(`{}`), nil)

			_, err := uc.Purchase(context.Background(), "r1", in)
			if !errors.Is(err, ErrPaymentPending) || errors.Is(err, ErrPaymentRejected) {
				t.Fatalf("expected ErrPaymentPending, got %v", err)
			}
			if !strings.Contains(err.Error(), "mp-9") {
				t.Fatalf("expected provider payment id in %q", err)
			}
		})
	}

	t.Run("store failure after charge keeps the payment reference", func(t *testing.T) {
		uc, purchases, gateway := setup(t, true)
		in := validPurchaseInput()
		in.PaymentMethod = entities.PaymentMethodMercadoPago
		dbErr := errors.New("db down")

		gomock.InOrder(
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", json.RawMessage(`{}`), nil),
			purchases.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Purchase) (entities.Purchase, error) {
				if p.PaymentReference != "mp-1" {
					t.Fatalf("expected payment reference mp-1, got %q", p.PaymentReference)
				}
				return entities.Purchase{}, dbErr
			}),
		)

		_, err := uc.Purchase(context.Background(), "r1", in)
		if !errors.Is(err, ErrPurchaseNotRecorded) || !errors.Is(err, dbErr) {
			t.Fatalf("expected ErrPurchaseNotRecorded wrapping the store error, got %v", err)
		}
		if !strings.Contains(err.Error(), "mp-1") {
			t.Fatalf("expected provider payment id in %q", err)
		}
	})

	t.Run("cash store failure is returned as is", func(t *testing.T) {
		uc, purchases, _ := setup(t, true)
		dbErr := errors.New("db down")

		purchases.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Purchase{}, dbErr)

		_, err := uc.Purchase(context.Background(), "r1", validPurchaseInput())
		if err != dbErr {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPurchaseUseCase_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewPurchaseUseCase(purchases, nil, nil, nil, nil, nil)

	purchases.EXPECT().ListDetailed(gomock.Any()).Return(nil, errors.New("db"))

	if _, err := uc.ListAll(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
