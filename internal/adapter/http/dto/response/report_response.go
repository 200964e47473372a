package response

import "hoa_stickers/internal/domain/report"

type MonthlyIncomeResponse struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
}

type StickerIncomeResponse struct {
	Name   string  `json:"name"`
	Income float64 `json:"income"`
	Count  int     `json:"count"`
}

type TransactionReportResponse struct {
	TotalRevenue       float64                 `json:"total_revenue"`
	TotalTransactions  int                     `json:"total_transactions"`
	AverageTransaction float64                 `json:"average_transaction"`
	TopSticker         string                  `json:"top_sticker"`
	MonthlyIncome      []MonthlyIncomeResponse `json:"monthly_income"`
	StickerTypes       []StickerIncomeResponse `json:"sticker_types"`
}

func FromSummary(s report.Summary) TransactionReportResponse {
	out := TransactionReportResponse{
		TotalRevenue:       s.Totals.TotalRevenue,
		TotalTransactions:  s.Totals.TotalTransactions,
		AverageTransaction: s.Totals.AverageTransaction,
		TopSticker:         s.Totals.TopSticker,
		MonthlyIncome:      make([]MonthlyIncomeResponse, 0, len(s.MonthlyIncome)),
		StickerTypes:       make([]StickerIncomeResponse, 0, len(s.StickerTypes)),
	}
	for _, m := range s.MonthlyIncome {
		out.MonthlyIncome = append(out.MonthlyIncome, MonthlyIncomeResponse{Month: m.Month, Income: m.Income})
	}
	for _, st := range s.StickerTypes {
		out.StickerTypes = append(out.StickerTypes, StickerIncomeResponse{Name: st.Name, Income: st.Income, Count: st.Count})
	}
	return out
}
