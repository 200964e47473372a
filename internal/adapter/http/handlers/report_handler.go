package handlers

import (
	"net/http"

	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// TransactionReport godoc
// @Summary      Revenue by month and by sticker type
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.TransactionReportResponse
// @Security     Bearer
// @Router       /reports/transactions [get]
func (h *ReportHandler) TransactionReport(c *gin.Context) {
	s, err := h.usecase.Transactions(c.Request.Context())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}
