package response

import (
	"time"

	"hoa_stickers/internal/domain/entities"
)

type ResidentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phase     string    `json:"phase"`
	Block     string    `json:"block"`
	Lot       string    `json:"lot"`
	CreatedAt time.Time `json:"created_at"`
}

type ResidentWithPurchasesResponse struct {
	ResidentResponse
	Purchases []PurchaseResponse `json:"purchases"`
}

func FromResident(r entities.Resident) ResidentResponse {
	return ResidentResponse{
		ID:        r.ID,
		Name:      r.Name,
		Phase:     r.Phase,
		Block:     r.Block,
		Lot:       r.Lot,
		CreatedAt: r.CreatedAt,
	}
}

func FromResidentsWithPurchases(rows []entities.ResidentWithPurchases) []ResidentWithPurchasesResponse {
	out := make([]ResidentWithPurchasesResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ResidentWithPurchasesResponse{
			ResidentResponse: FromResident(r.Resident),
			Purchases:        FromPurchaseDetails(r.Purchases),
		})
	}
	return out
}
