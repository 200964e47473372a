package entities

import "time"

// StickerName is the sticker category sold to residents.
type StickerName string

const (
	StickerHomeowner  StickerName = "Homeowner"
	StickerTenant     StickerName = "Tenant"
	StickerCommercial StickerName = "Commercial"
	StickerService    StickerName = "Service"
)

var StickerNames = []StickerName{StickerHomeowner, StickerTenant, StickerCommercial, StickerService}

func (n StickerName) Valid() bool {
	for _, v := range StickerNames {
		if v == n {
			return true
		}
	}
	return false
}

// StickerColor is the color code printed on the sticker.
type StickerColor string

const (
	ColorGreen  StickerColor = "GREEN"
	ColorBlue   StickerColor = "BLUE"
	ColorYellow StickerColor = "YELLOW"
	ColorRed    StickerColor = "RED"
	ColorWhite  StickerColor = "WHITE"
)

var StickerColors = []StickerColor{ColorGreen, ColorBlue, ColorYellow, ColorRed, ColorWhite}

func (c StickerColor) Valid() bool {
	for _, v := range StickerColors {
		if v == c {
			return true
		}
	}
	return false
}

// Product is a purchasable vehicle sticker. Only active products are offered
// on the purchase form.
type Product struct {
	ID        string       `json:"id"`
	Name      StickerName  `json:"name"`
	Color     StickerColor `json:"color"`
	Amount    float64      `json:"amount"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
}

// DefaultProduct holds the values a new product form starts with.
func DefaultProduct() Product {
	return Product{Name: StickerHomeowner, Color: ColorGreen, Amount: 0.01, Active: true}
}
