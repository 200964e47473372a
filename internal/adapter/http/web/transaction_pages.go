package web

import (
	"log/slog"
	"net/http"

	response "hoa_stickers/internal/adapter/http/dto/response"
	"hoa_stickers/internal/domain/report"

	"github.com/gin-gonic/gin"
)

type transactionsData struct {
	Summary report.Summary
	Series  response.TransactionReportResponse
}

// Transactions renders the revenue totals with the monthly and per sticker
// series, both as tables and as the JSON the API returns.
func (p *Pages) Transactions(c *gin.Context) {
	v := view{Title: "Transactions"}
	status := http.StatusOK
	s, err := p.reports.Transactions(c.Request.Context())
	if err != nil {
		slog.Warn("transactions page load failed", "err", err)
		status = useCaseFailure(&v, err)
	}
	v.Data = transactionsData{Summary: s, Series: response.FromSummary(s)}
	p.render(c, status, "transactions", v)
}
