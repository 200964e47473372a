package response

import (
	"time"

	"hoa_stickers/internal/domain/entities"
)

// PurchaseResponse is a purchase with its joined product and resident,
// when those still exist.
type PurchaseResponse struct {
	ID               string            `json:"id"`
	ResidentID       string            `json:"resident_id"`
	ProductID        string            `json:"product_id"`
	ProductName      string            `json:"product_name"`
	AmountPaid       float64           `json:"amount_paid"`
	DriverName       string            `json:"driver_name"`
	DriverLicense    *string           `json:"driver_license"`
	Company          *string           `json:"company"`
	ContactNumber    *string           `json:"contact_number"`
	StickerNumber    string            `json:"sticker_number"`
	PlateNumber      string            `json:"plate_number"`
	AFNumber         string            `json:"af_number"`
	Penalty          bool              `json:"penalty"`
	Type             string            `json:"type"`
	PaymentMethod    string            `json:"payment_method"`
	PaymentReference string            `json:"payment_reference,omitempty"`
	PurchaseDate     time.Time         `json:"purchase_date"`
	Product          *ProductResponse  `json:"product,omitempty"`
	Resident         *ResidentResponse `json:"resident,omitempty"`
}

type QuoteResponse struct {
	ProductID string  `json:"product_id"`
	Penalty   bool    `json:"penalty"`
	Amount    float64 `json:"amount"`
}

func FromPurchase(p entities.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:               p.ID,
		ResidentID:       p.ResidentID,
		ProductID:        p.ProductID,
		AmountPaid:       p.AmountPaid,
		DriverName:       p.DriverName,
		DriverLicense:    p.DriverLicense,
		Company:          p.Company,
		ContactNumber:    p.ContactNumber,
		StickerNumber:    p.StickerNumber,
		PlateNumber:      p.PlateNumber,
		AFNumber:         p.AFNumber,
		Penalty:          p.Penalty,
		Type:             string(p.Type),
		PaymentMethod:    string(p.PaymentMethod),
		PaymentReference: p.PaymentReference,
		PurchaseDate:     p.PurchaseDate,
	}
}

func FromPurchaseDetail(d entities.PurchaseDetail) PurchaseResponse {
	out := FromPurchase(d.Purchase)
	out.ProductName = d.ProductName()
	if d.Product != nil {
		p := FromProduct(*d.Product)
		out.Product = &p
	}
	if d.Resident != nil {
		r := FromResident(*d.Resident)
		out.Resident = &r
	}
	return out
}

func FromPurchaseDetails(ds []entities.PurchaseDetail) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromPurchaseDetail(d))
	}
	return out
}
