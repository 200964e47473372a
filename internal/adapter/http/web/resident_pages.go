package web

import (
	"errors"
	"log/slog"
	"net/http"

	request "hoa_stickers/internal/adapter/http/dto/request"
	"hoa_stickers/internal/domain/entities"
	"hoa_stickers/internal/usecase"

	"github.com/gin-gonic/gin"
)

type residentsData struct {
	Filter entities.ResidentFilter
	Rows   []entities.ResidentWithPurchases
	Form   request.ResidentRequest
}

type residentData struct {
	Resident  entities.Resident
	Purchases []entities.PurchaseDetail
	Products  []entities.Product
	Types     []entities.PurchaseType
	Form      request.ResidentRequest
	Purchase  request.PurchaseRequest
	Quote     *float64
}

func (p *Pages) Residents(c *gin.Context) {
	var q request.ResidentFilterQuery
	_ = c.ShouldBindQuery(&q)
	p.renderResidents(c, http.StatusOK, q.ToFilter(), request.ResidentRequest{}, view{})
}

func (p *Pages) CreateResident(c *gin.Context) {
	var form request.ResidentRequest
	if err := c.ShouldBind(&form); err != nil {
		v := view{}
		status := bindFailure(&v, err)
		p.renderResidents(c, status, entities.ResidentFilter{}, form, v)
		return
	}

	if _, err := p.residents.Register(c.Request.Context(), form.ToInput()); err != nil {
		v := view{}
		status := useCaseFailure(&v, err)
		p.renderResidents(c, status, entities.ResidentFilter{}, form, v)
		return
	}
	p.seeOther(c, "/residents")
}

func (p *Pages) renderResidents(c *gin.Context, status int, filter entities.ResidentFilter, form request.ResidentRequest, v view) {
	rows, err := p.residents.ListWithPurchases(c.Request.Context(), filter)
	if err != nil {
		slog.Warn("residents page load failed", "err", err)
		if v.Error == "" {
			status = useCaseFailure(&v, err)
		}
	}
	v.Title = "Residents"
	v.Data = residentsData{Filter: filter, Rows: rows, Form: form}
	p.render(c, status, "residents", v)
}

func (p *Pages) Resident(c *gin.Context) {
	p.renderResident(c, http.StatusOK, residentData{}, view{})
}

// QuoteResident re-renders the detail page with the amount the selected
// sticker would charge.
func (p *Pages) QuoteResident(c *gin.Context) {
	var q request.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		v := view{}
		p.renderResident(c, bindFailure(&v, err), residentData{}, v)
		return
	}

	d := residentData{Purchase: request.PurchaseRequest{ProductID: q.ProductID, Penalty: q.Penalty}}
	amount, err := p.purchases.Quote(c.Request.Context(), q.ProductID, q.Penalty)
	if err != nil {
		v := view{}
		p.renderResident(c, useCaseFailure(&v, err), d, v)
		return
	}
	d.Quote = &amount
	d.Purchase.Amount = &amount
	p.renderResident(c, http.StatusOK, d, view{})
}

func (p *Pages) UpdateResident(c *gin.Context) {
	id := c.Param("id")
	var form request.ResidentRequest
	if err := c.ShouldBind(&form); err != nil {
		v := view{}
		p.renderResident(c, bindFailure(&v, err), residentData{Form: form}, v)
		return
	}

	if _, err := p.residents.Update(c.Request.Context(), id, form.ToInput()); err != nil {
		v := view{}
		p.renderResident(c, useCaseFailure(&v, err), residentData{Form: form}, v)
		return
	}
	p.seeOther(c, "/residents/"+id)
}

func (p *Pages) DeleteResident(c *gin.Context) {
	if err := p.residents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		v := view{}
		p.renderResident(c, useCaseFailure(&v, err), residentData{}, v)
		return
	}
	p.seeOther(c, "/residents")
}

func (p *Pages) CreatePurchase(c *gin.Context) {
	id := c.Param("id")
	var form request.PurchaseRequest
	if err := c.ShouldBind(&form); err != nil {
		v := view{}
		p.renderResident(c, bindFailure(&v, err), residentData{Purchase: form}, v)
		return
	}
	if form.PaymentMethod == "" {
		form.PaymentMethod = string(entities.PaymentMethodCash)
	}

	if _, err := p.purchases.Purchase(c.Request.Context(), id, form.ToInput()); err != nil {
		v := view{}
		p.renderResident(c, useCaseFailure(&v, err), residentData{Purchase: form}, v)
		return
	}
	p.seeOther(c, "/residents/"+id)
}

// renderResident loads the resident, its purchases and the active products.
// A missing resident renders the not found page.
func (p *Pages) renderResident(c *gin.Context, status int, d residentData, v view) {
	ctx := c.Request.Context()
	id := c.Param("id")

	r, err := p.residents.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrResidentNotFound) || errors.Is(err, usecase.ErrInvalidResidentID) {
			p.render(c, http.StatusNotFound, "not_found", view{Title: "Not found", Error: "Resident not found"})
			return
		}
		slog.Warn("resident page load failed", "resident_id", id, "err", err)
		status = useCaseFailure(&v, err)
	}
	d.Resident = r
	if d.Form == (request.ResidentRequest{}) {
		d.Form = request.ResidentRequest{Name: r.Name, Phase: r.Phase, Block: r.Block, Lot: r.Lot}
	}

	if d.Purchases, err = p.residents.PurchasesOf(ctx, id); err != nil {
		slog.Warn("resident purchases load failed", "resident_id", id, "err", err)
		if v.Error == "" {
			status = useCaseFailure(&v, err)
		}
	}
	if d.Products, err = p.products.ListActive(ctx); err != nil {
		slog.Warn("active products load failed", "err", err)
		if v.Error == "" {
			status = useCaseFailure(&v, err)
		}
	}
	d.Types = entities.PurchaseTypes

	v.Title = r.Name
	if v.Title == "" {
		v.Title = "Resident"
	}
	v.Data = d
	p.render(c, status, "resident", v)
}
