package request

import (
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"
)

// ProductRequest creates or edits a sticker product. Active is a pointer so
// a JSON body can omit it; an HTML checkbox left unticked is simply absent.
type ProductRequest struct {
	Name   string  `json:"name" form:"name" binding:"required,oneof=Homeowner Tenant Commercial Service"`
	Color  string  `json:"color" form:"color" binding:"required,oneof=GREEN BLUE YELLOW RED WHITE"`
	Amount float64 `json:"amount" form:"amount" binding:"required,gt=0"`
	Active *bool   `json:"active" form:"active"`
}

// ToInput uses activeDefault when Active was not sent.
func (r ProductRequest) ToInput(activeDefault bool) usecase.ProductInput {
	active := activeDefault
	if r.Active != nil {
		active = *r.Active
	}
	return usecase.ProductInput{
		Name:   entities.StickerName(r.Name),
		Color:  entities.StickerColor(r.Color),
		Amount: r.Amount,
		Active: active,
	}
}
