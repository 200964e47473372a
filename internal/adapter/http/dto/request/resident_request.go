package request

import (
	"strings"

	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"
)

// ResidentRequest is shared by the resident form and the JSON API.
type ResidentRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Phase string `json:"phase" form:"phase" binding:"required"`
	Block string `json:"block" form:"block" binding:"required"`
	Lot   string `json:"lot" form:"lot" binding:"required"`
}

func (r ResidentRequest) ToInput() usecase.ResidentInput {
	return usecase.ResidentInput{Name: r.Name, Phase: r.Phase, Block: r.Block, Lot: r.Lot}
}

// ResidentFilterQuery holds the resident list query string.
type ResidentFilterQuery struct {
	Phase string `form:"phase"`
	Block string `form:"block"`
	Lot   string `form:"lot"`
}

func (q ResidentFilterQuery) ToFilter() entities.ResidentFilter {
	return entities.ResidentFilter{
		Phase: strings.TrimSpace(q.Phase),
		Block: strings.TrimSpace(q.Block),
		Lot:   strings.TrimSpace(q.Lot),
	}
}
