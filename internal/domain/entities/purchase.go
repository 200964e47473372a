package entities

import "time"

type PurchaseType string

const (
	PurchaseTypeNew     PurchaseType = "New Application"
	PurchaseTypeRenewal PurchaseType = "Renewal"
)

var PurchaseTypes = []PurchaseType{PurchaseTypeNew, PurchaseTypeRenewal}

func (t PurchaseType) Valid() bool {
	return t == PurchaseTypeNew || t == PurchaseTypeRenewal
}

type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
)

// Purchase links a resident to a sticker bought for one vehicle.
// Optional driver fields are nil when left blank on the form.
type Purchase struct {
	ID               string        `json:"id"`
	ResidentID       string        `json:"resident_id"`
	ProductID        string        `json:"product_id"`
	AmountPaid       float64       `json:"amount_paid"`
	DriverName       string        `json:"driver_name"`
	DriverLicense    *string       `json:"driver_license,omitempty"`
	Company          *string       `json:"company,omitempty"`
	ContactNumber    *string       `json:"contact_number,omitempty"`
	StickerNumber    string        `json:"sticker_number"`
	PlateNumber      string        `json:"plate_number"`
	AFNumber         string        `json:"af_number"`
	Penalty          bool          `json:"penalty"`
	Type             PurchaseType  `json:"type"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	PurchaseDate     time.Time     `json:"purchase_date"`
}

// PurchaseDetail is the transaction read model: a purchase joined with its
// product and resident. Either side may be nil when the row it points to is gone.
type PurchaseDetail struct {
	Purchase
	Product  *Product  `json:"product,omitempty"`
	Resident *Resident `json:"resident,omitempty"`
}

// ProductName returns the joined product name or "Unknown".
func (d PurchaseDetail) ProductName() string {
	if d.Product == nil || d.Product.Name == "" {
		return "Unknown"
	}
	return string(d.Product.Name)
}

// PenaltyMultiplier is applied to the product price when a purchase is late.
const PenaltyMultiplier = 2

// ChargedAmount is the amount owed for a sticker priced at base.
// Both the purchase form preview and the stored purchase use it.
func ChargedAmount(base float64, penalty bool) float64 {
	if penalty {
		return base * PenaltyMultiplier
	}
	return base
}
