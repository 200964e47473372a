package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/infrastructure/metrics"
	"hoa_stickers/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPurchase             = errors.New("invalid purchase")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentRejected             = errors.New("payment rejected")
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
)

// PurchaseInput carries the purchase form. SubmittedAmount is the amount the
// form displayed; the stored amount is always recomputed from the product price.
type PurchaseInput struct {
	ProductID       string
	DriverName      string
	DriverLicense   string
	Company         string
	ContactNumber   string
	StickerNumber   string
	PlateNumber     string
	AFNumber        string
	Penalty         bool
	Type            entities.PurchaseType
	PaymentMethod   entities.PaymentMethod
	PaymentPayload  json.RawMessage
	SubmittedAmount *float64
}

type IPurchaseUseCase interface {
	Quote(ctx context.Context, productID string, penalty bool) (float64, error)
	Purchase(ctx context.Context, residentID string, in PurchaseInput) (entities.Purchase, error)
	ListAll(ctx context.Context) ([]entities.PurchaseDetail, error)
}

type PurchaseUseCase struct {
	purchases interfaces.IPurchaseRepository
	residents interfaces.IResidentRepository
	products  interfaces.IProductRepository
	gateway   interfaces.IPaymentGateway
	cache     interfaces.IQueryCache
	metrics   *metrics.Metrics
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(
	purchases interfaces.IPurchaseRepository,
	residents interfaces.IResidentRepository,
	products interfaces.IProductRepository,
	gateway interfaces.IPaymentGateway,
	cache interfaces.IQueryCache,
	m *metrics.Metrics,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		purchases: purchases,
		residents: residents,
		products:  products,
		gateway:   gateway,
		cache:     cache,
		metrics:   m,
	}
}

// Quote returns the amount the purchase form should display.
func (u *PurchaseUseCase) Quote(ctx context.Context, productID string, penalty bool) (float64, error) {
	p, err := u.activeProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return entities.ChargedAmount(p.Amount, penalty), nil
}

func (u *PurchaseUseCase) Purchase(ctx context.Context, residentID string, in PurchaseInput) (entities.Purchase, error) {
	residentID = strings.TrimSpace(residentID)
	if residentID == "" {
		return entities.Purchase{}, ErrInvalidResidentID
	}
	in, err := in.normalize()
	if err != nil {
		return entities.Purchase{}, err
	}

	resident, err := u.residents.GetByID(ctx, residentID)
	if err != nil {
		slog.Error("purchase resident lookup failed", "resident_id", residentID, "err", err)
		return entities.Purchase{}, err
	}
	if resident.ID == "" {
		return entities.Purchase{}, ErrResidentNotFound
	}

	product, err := u.activeProduct(ctx, in.ProductID)
	if err != nil {
		return entities.Purchase{}, err
	}

	amount := entities.ChargedAmount(product.Amount, in.Penalty)
	if in.SubmittedAmount != nil && math.Abs(*in.SubmittedAmount-amount) > 0.005 {
		slog.Warn("submitted amount differs from charged amount",
			"resident_id", residentID, "product_id", product.ID,
			"submitted", *in.SubmittedAmount, "charged", amount)
	}

	p := entities.Purchase{
		ID:            uuid.NewString(),
		ResidentID:    residentID,
		ProductID:     product.ID,
		AmountPaid:    amount,
		DriverName:    in.DriverName,
		DriverLicense: optional(in.DriverLicense),
		Company:       optional(in.Company),
		ContactNumber: optional(in.ContactNumber),
		StickerNumber: in.StickerNumber,
		PlateNumber:   in.PlateNumber,
		AFNumber:      in.AFNumber,
		Penalty:       in.Penalty,
		Type:          in.Type,
		PaymentMethod: in.PaymentMethod,
		PurchaseDate:  time.Now().UTC(),
	}

	if p.PaymentMethod == entities.PaymentMethodMercadoPago {
		ref, err := u.charge(ctx, p, product, in.PaymentPayload)
		if err != nil {
			return entities.Purchase{}, err
		}
		p.PaymentReference = ref
	}

	created, err := u.purchases.Create(ctx, p)
	if err != nil {
		if p.PaymentReference != "" {
			slog.Error("purchase create failed after card charge",
				"purchase_id", p.ID, "resident_id", residentID,
				"provider_payment_id", p.PaymentReference, "amount", p.AmountPaid, "err", err)
			return entities.Purchase{}, fmt.Errorf("%w: provider payment %s: %w", ErrPurchaseNotRecorded, p.PaymentReference, err)
		}
		slog.Error("purchase create failed", "resident_id", residentID, "err", err)
		return entities.Purchase{}, err
	}

	invalidate(ctx, u.cache,
		KeyResidentsWithPurchases,
		residentPurchasesKey(residentID),
		KeyAllPurchases,
		KeyPurchasesWithProducts,
	)
	u.metrics.IncrementPurchase(string(created.Type), created.Penalty, created.AmountPaid)
	slog.Info("sticker purchased",
		"purchase_id", created.ID, "resident_id", residentID,
		"amount", created.AmountPaid, "penalty", created.Penalty)
	return created, nil
}

func (u *PurchaseUseCase) ListAll(ctx context.Context) ([]entities.PurchaseDetail, error) {
	return cachedQuery(ctx, u.cache, u.metrics, KeyAllPurchases, func(ctx context.Context) ([]entities.PurchaseDetail, error) {
		ps, err := u.purchases.ListDetailed(ctx)
		if err != nil {
			slog.Error("purchase list failed", "err", err)
			return nil, err
		}
		return nonNil(ps), nil
	})
}

func (u *PurchaseUseCase) activeProduct(ctx context.Context, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, productID)
	if err != nil {
		slog.Error("product lookup failed", "product_id", productID, "err", err)
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	if !p.Active {
		return entities.Product{}, ErrProductInactive
	}
	return p, nil
}

func (in PurchaseInput) normalize() (PurchaseInput, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.DriverName = strings.TrimSpace(in.DriverName)
	in.DriverLicense = strings.TrimSpace(in.DriverLicense)
	in.Company = strings.TrimSpace(in.Company)
	in.ContactNumber = strings.TrimSpace(in.ContactNumber)
	in.StickerNumber = strings.TrimSpace(in.StickerNumber)
	in.PlateNumber = strings.TrimSpace(in.PlateNumber)
	in.AFNumber = strings.TrimSpace(in.AFNumber)

	if in.ProductID == "" {
		return PurchaseInput{}, ErrInvalidProductID
	}
	if in.DriverName == "" || in.StickerNumber == "" || in.PlateNumber == "" || in.AFNumber == "" {
		return PurchaseInput{}, ErrInvalidPurchase
	}
	if in.Type == "" {
		in.Type = entities.PurchaseTypeNew
	}
	if !in.Type.Valid() {
		return PurchaseInput{}, ErrInvalidPurchase
	}
	switch in.PaymentMethod {
	case "":
		in.PaymentMethod = entities.PaymentMethodCash
	case entities.PaymentMethodCash, entities.PaymentMethodMercadoPago:
	default:
		return PurchaseInput{}, ErrInvalidPurchase
	}
	return in, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
