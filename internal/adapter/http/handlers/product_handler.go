package handlers

import (
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler manages the sticker catalog.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts godoc
// @Summary      List sticker products
// @Tags         products
// @Produce      json
// @Success      200  {array}  response.ProductResponse
// @Security     Bearer
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(ps))
}

// ListActiveProducts godoc
// @Summary      List stickers offered for purchase
// @Tags         products
// @Produce      json
// @Success      200  {array}  response.ProductResponse
// @Security     Bearer
// @Router       /products/active [get]
func (h *ProductHandler) ListActiveProducts(c *gin.Context) {
	ps, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(ps))
}

// GetProduct godoc
// @Summary      Get a sticker product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.ProductResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// CreateProduct godoc
// @Summary      Create a sticker product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProductRequest  true  "Product"
// @Success      201   {object}  response.ProductResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput(true))
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

// UpdateProduct godoc
// @Summary      Update a sticker product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Product ID"
// @Param        body  body      request.ProductRequest  true  "Product"
// @Success      200   {object}  response.ProductResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, BindError(err))
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput(true))
	if err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// DeleteProduct godoc
// @Summary      Delete a sticker product
// @Tags         products
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, MapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
