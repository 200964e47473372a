package handlers

import (
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

// ListPurchases godoc
// @Summary      List every sticker purchase
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  response.PurchaseResponse
// @Security     Bearer
// @Router       /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	ps, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseDetails(ps))
}

// QuotePurchase godoc
// @Summary      Amount a purchase would charge
// @Tags         purchases
// @Produce      json
// @Param        product_id  query     string  true   "Product ID"
// @Param        penalty     query     bool    false  "Late renewal penalty"
// @Success      200         {object}  response.QuoteResponse
// @Failure      404         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /purchases/quote [get]
func (h *PurchaseHandler) QuotePurchase(c *gin.Context) {
	var q request.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, BindError(err))
		return
	}

	amount, err := h.usecase.Quote(c.Request.Context(), q.ProductID, q.Penalty)
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteResponse{ProductID: q.ProductID, Penalty: q.Penalty, Amount: amount})
}

// CreatePurchase godoc
// @Summary      Sell a sticker to a resident
// @Description  The charged amount is the product price, doubled when penalty is set.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Resident ID"
// @Param        body  body      request.PurchaseRequest  true  "Purchase"
// @Success      201   {object}  response.PurchaseResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      402   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /residents/{id}/purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var payload request.PurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	p, err := h.usecase.Purchase(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPurchase(p))
}
