package interfaces

import (
	"context"

	"hoa_stickers/internal/domain/entities"
)

// IResidentRepository persists residents.
//
// Lookups return a zero-value Resident (empty ID) when nothing matches.
// List orders by created_at, newest first.
type IResidentRepository interface {
	Create(ctx context.Context, r entities.Resident) (entities.Resident, error)
	GetByID(ctx context.Context, id string) (entities.Resident, error)
	List(ctx context.Context, filter entities.ResidentFilter) ([]entities.Resident, error)
	Update(ctx context.Context, r entities.Resident) (entities.Resident, error)
	Delete(ctx context.Context, id string) (bool, error)
}
