// Package report derives the transaction dashboard figures from purchase rows.
package report

import (
	"sort"
	"time"

	"hoa_stickers/internal/domain/entities"
)

// MonthKeyLayout formats purchase dates into the monthly series key (YYYY-MM).
const MonthKeyLayout = "2006-01"

// NoTopSticker is reported when there are no transactions.
const NoTopSticker = "N/A"

// Record is one paid amount already keyed by month and product name.
type Record struct {
	Month   string
	Product string
	Amount  float64
}

type MonthlyIncome struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
}

type StickerTypeIncome struct {
	Name   string  `json:"name"`
	Income float64 `json:"income"`
	Count  int     `json:"count"`
}

type Totals struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalTransactions  int     `json:"total_transactions"`
	AverageTransaction float64 `json:"average_transaction"`
	TopSticker         string  `json:"top_sticker"`
}

// Summary holds the trend series, the per-product breakdown and the totals.
type Summary struct {
	MonthlyIncome []MonthlyIncome     `json:"monthly_income"`
	StickerTypes  []StickerTypeIncome `json:"sticker_types"`
	Totals        Totals              `json:"totals"`
}

// RecordFromPurchase keys a purchase by its purchase month in loc and its
// joined product name.
func RecordFromPurchase(p entities.PurchaseDetail, loc *time.Location) Record {
	return Record{
		Month:   MonthKey(p.PurchaseDate, loc),
		Product: p.ProductName(),
		Amount:  p.AmountPaid,
	}
}

// MonthKey formats t as a calendar month in loc. A nil loc means UTC.
func MonthKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(MonthKeyLayout)
}

// Summarize aggregates purchases into a Summary, bucketing months in loc.
func Summarize(purchases []entities.PurchaseDetail, loc *time.Location) Summary {
	records := make([]Record, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, RecordFromPurchase(p, loc))
	}
	return SummarizeRecords(records)
}

// SummarizeRecords groups records by month (ascending key) and by product
// (descending income, ties by name) in a single pass and derives the totals.
func SummarizeRecords(records []Record) Summary {
	monthly := make(map[string]float64)
	products := make(map[string]*StickerTypeIncome)
	var revenue float64

	for _, r := range records {
		monthly[r.Month] += r.Amount
		p, ok := products[r.Product]
		if !ok {
			p = &StickerTypeIncome{Name: r.Product}
			products[r.Product] = p
		}
		p.Income += r.Amount
		p.Count++
		revenue += r.Amount
	}

	s := Summary{
		MonthlyIncome: make([]MonthlyIncome, 0, len(monthly)),
		StickerTypes:  make([]StickerTypeIncome, 0, len(products)),
	}
	for month, income := range monthly {
		s.MonthlyIncome = append(s.MonthlyIncome, MonthlyIncome{Month: month, Income: income})
	}
	sort.Slice(s.MonthlyIncome, func(i, j int) bool {
		return s.MonthlyIncome[i].Month < s.MonthlyIncome[j].Month
	})

	for _, p := range products {
		s.StickerTypes = append(s.StickerTypes, *p)
	}
	sort.Slice(s.StickerTypes, func(i, j int) bool {
		a, b := s.StickerTypes[i], s.StickerTypes[j]
		if a.Income != b.Income {
			return a.Income > b.Income
		}
		return a.Name < b.Name
	})

	s.Totals = Totals{
		TotalRevenue:      revenue,
		TotalTransactions: len(records),
		TopSticker:        NoTopSticker,
	}
	if len(records) > 0 {
		s.Totals.AverageTransaction = revenue / float64(len(records))
		s.Totals.TopSticker = s.StickerTypes[0].Name
	}
	return s
}
