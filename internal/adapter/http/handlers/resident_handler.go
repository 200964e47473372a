package handlers

import (
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ResidentHandler struct {
	usecase usecase.IResidentUseCase
}

func NewResidentHandler(uc usecase.IResidentUseCase) *ResidentHandler {
	return &ResidentHandler{usecase: uc}
}

// ListResidents godoc
// @Summary      List residents with their purchases
// @Tags         residents
// @Produce      json
// @Param        phase  query  string  false  "Phase"
// @Param        block  query  string  false  "Block"
// @Param        lot    query  string  false  "Lot"
// @Success      200  {array}   response.ResidentWithPurchasesResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	var q request.ResidentFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, BindError(err))
		return
	}

	rows, err := h.usecase.ListWithPurchases(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResidentsWithPurchases(rows))
}

// GetResident godoc
// @Summary      Get a resident
// @Tags         residents
// @Produce      json
// @Param        id   path      string  true  "Resident ID"
// @Success      200  {object}  response.ResidentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResident(r))
}

// CreateResident godoc
// @Summary      Register a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Param        body  body      request.ResidentRequest  true  "Resident"
// @Success      201   {object}  response.ResidentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var payload request.ResidentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	r, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromResident(r))
}

// UpdateResident godoc
// @Summary      Update a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Resident ID"
// @Param        body  body      request.ResidentRequest  true  "Resident"
// @Success      200   {object}  response.ResidentResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	var payload request.ResidentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	r, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromResident(r))
}

// DeleteResident godoc
// @Summary      Delete a resident
// @Tags         residents
// @Param        id  path  string  true  "Resident ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListResidentPurchases godoc
// @Summary      List a resident's purchases
// @Tags         residents
// @Produce      json
// @Param        id   path     string  true  "Resident ID"
// @Success      200  {array}  response.PurchaseResponse
// @Security     Bearer
// @Router       /residents/{id}/purchases [get]
func (h *ResidentHandler) ListResidentPurchases(c *gin.Context) {
	ps, err := h.usecase.PurchasesOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseDetails(ps))
}
