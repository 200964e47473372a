package response

import (
	"time"

	"hoa_stickers/internal/domain/entities"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Amount    float64   `json:"amount"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      string(p.Name),
		Color:     string(p.Color),
		Amount:    p.Amount,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
