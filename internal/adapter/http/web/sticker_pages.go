package web

import (
	"log/slog"
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	"hoa_stickers/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const settingsPath = "/vehicle-sticker-settings"

type stickersData struct {
	Purchases []entities.PurchaseDetail
}

type settingsData struct {
	Products []entities.Product
	Names    []entities.StickerName
	Colors   []entities.StickerColor
	Form     request.ProductRequest
	// EditID is the product whose edit form failed, if any.
	EditID string
}

// Stickers lists every purchase with its product and resident.
func (p *Pages) Stickers(c *gin.Context) {
	v := view{Title: "Stickers"}
	status := http.StatusOK
	ps, err := p.purchases.ListAll(c.Request.Context())
	if err != nil {
		slog.Warn("stickers page load failed", "err", err)
		status = useCaseFailure(&v, err)
	}
	v.Data = stickersData{Purchases: ps}
	p.render(c, status, "stickers", v)
}

func (p *Pages) Settings(c *gin.Context) {
	d := entities.DefaultProduct()
	active := d.Active
	form := request.ProductRequest{Name: string(d.Name), Color: string(d.Color), Amount: d.Amount, Active: &active}
	p.renderSettings(c, http.StatusOK, form, "", view{})
}

// An unticked checkbox is not sent, so a missing active field means false here.
func (p *Pages) CreateProduct(c *gin.Context) {
	var form request.ProductRequest
	if err := c.ShouldBind(&form); err != nil {
		v := view{}
		p.renderSettings(c, bindFailure(&v, err), form, "", v)
		return
	}

	if _, err := p.products.Create(c.Request.Context(), form.ToInput(false)); err != nil {
		v := view{}
		p.renderSettings(c, useCaseFailure(&v, err), form, "", v)
		return
	}
	p.seeOther(c, settingsPath)
}

func (p *Pages) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var form request.ProductRequest
	if err := c.ShouldBind(&form); err != nil {
		v := view{}
		p.renderSettings(c, bindFailure(&v, err), form, id, v)
		return
	}

	if _, err := p.products.Update(c.Request.Context(), id, form.ToInput(false)); err != nil {
		v := view{}
		p.renderSettings(c, useCaseFailure(&v, err), form, id, v)
		return
	}
	p.seeOther(c, settingsPath)
}

func (p *Pages) DeleteProduct(c *gin.Context) {
	if err := p.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		v := view{}
		p.renderSettings(c, useCaseFailure(&v, err), request.ProductRequest{}, "", v)
		return
	}
	p.seeOther(c, settingsPath)
}

func (p *Pages) renderSettings(c *gin.Context, status int, form request.ProductRequest, editID string, v view) {
	products, err := p.products.List(c.Request.Context())
	if err != nil {
		slog.Warn("sticker settings load failed", "err", err)
		if v.Error == "" {
			status = useCaseFailure(&v, err)
		}
	}
	v.Title = "Vehicle sticker settings"
	v.Data = settingsData{
		Products: products,
		Names:    entities.StickerNames,
		Colors:   entities.StickerColors,
		Form:     form,
		EditID:   editID,
	}
	p.render(c, status, "settings", v)
}
