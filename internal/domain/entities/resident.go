package entities

import "time"

// Resident is a homeowner or tenant in the association registry.
// Phase, block and lot make up the address inside the subdivision.
type Resident struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phase     string    `json:"phase"`
	Block     string    `json:"block"`
	Lot       string    `json:"lot"`
	CreatedAt time.Time `json:"created_at"`
}

// ResidentFilter holds the equality filters of the resident list.
// Empty fields are not applied.
type ResidentFilter struct {
	Phase string `json:"phase,omitempty"`
	Block string `json:"block,omitempty"`
	Lot   string `json:"lot,omitempty"`
}

func (f ResidentFilter) IsEmpty() bool {
	return f.Phase == "" && f.Block == "" && f.Lot == ""
}

// Matches reports whether r satisfies every non-empty filter field.
func (f ResidentFilter) Matches(r Resident) bool {
	if f.Phase != "" && r.Phase != f.Phase {
		return false
	}
	if f.Block != "" && r.Block != f.Block {
		return false
	}
	if f.Lot != "" && r.Lot != f.Lot {
		return false
	}
	return true
}

// ResidentWithPurchases is the resident list row: a resident and the
// purchases made under its name, newest first.
type ResidentWithPurchases struct {
	Resident
	Purchases []PurchaseDetail `json:"purchases"`
}
