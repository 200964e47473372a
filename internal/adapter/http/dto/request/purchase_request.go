package request

import (
	"encoding/json"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"
)

// PurchaseRequest is the sticker purchase form.
//
// Amount is what the form displayed and is only compared against the
// recomputed charge. PaymentPayload carries card data for the gateway and is
// JSON only.
type PurchaseRequest struct {
	ProductID      string          `json:"product_id" form:"product_id" binding:"required"`
	Type           string          `json:"type" form:"type" binding:"required,oneof='New Application' Renewal"`
	Penalty        bool            `json:"penalty" form:"penalty"`
	Amount         *float64        `json:"amount_paid" form:"amount_paid"`
	DriverName     string          `json:"driver_name" form:"driver_name" binding:"required"`
	DriverLicense  string          `json:"driver_license" form:"driver_license"`
	Company        string          `json:"company" form:"company"`
	ContactNumber  string          `json:"contact_number" form:"contact_number"`
	StickerNumber  string          `json:"sticker_number" form:"sticker_number" binding:"required"`
	PlateNumber    string          `json:"plate_number" form:"plate_number" binding:"required"`
	AFNumber       string          `json:"af_number" form:"af_number" binding:"required"`
	PaymentMethod  string          `json:"payment_method" form:"payment_method"`
	PaymentPayload json.RawMessage `json:"payment_payload" form:"-"`
}

func (r PurchaseRequest) ToInput() usecase.PurchaseInput {
	return usecase.PurchaseInput{
		ProductID:       r.ProductID,
		DriverName:      r.DriverName,
		DriverLicense:   r.DriverLicense,
		Company:         r.Company,
		ContactNumber:   r.ContactNumber,
		StickerNumber:   r.StickerNumber,
		PlateNumber:     r.PlateNumber,
		AFNumber:        r.AFNumber,
		Penalty:         r.Penalty,
		Type:            entities.PurchaseType(r.Type),
		PaymentMethod:   entities.PaymentMethod(r.PaymentMethod),
		PaymentPayload:  r.PaymentPayload,
		SubmittedAmount: r.Amount,
	}
}

// QuoteQuery asks for the amount a purchase would charge.
type QuoteQuery struct {
	ProductID string `form:"product_id" binding:"required"`
	Penalty   bool   `form:"penalty"`
}
