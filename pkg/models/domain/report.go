package domain

import "time"

// MonthTotal is the aggregated price and resolved profit for one month.
type MonthTotal struct {
	Month  string // YYYY-MM
	Price  float64
	Profit float64
}

// MonthlyReport lists month totals in ascending month-key order.
type MonthlyReport struct {
	Months []MonthTotal
}

func (r MonthlyReport) Empty() bool {
	return len(r.Months) == 0
}

// TotalPrice sums the price column across all months.
func (r MonthlyReport) TotalPrice() float64 {
	var total float64
	for _, m := range r.Months {
		total += m.Price
	}
	return total
}

// TotalProfit sums the resolved profit column across all months.
func (r MonthlyReport) TotalProfit() float64 {
	var total float64
	for _, m := range r.Months {
		total += m.Profit
	}
	return total
}

// ProductTotal is a product with its summed quantity.
type ProductTotal struct {
	Product  string
	Quantity float64
}

// MonthProducts lists one month's products, descending by quantity,
// ties in first-seen order.
type MonthProducts struct {
	Month    string // YYYY-MM
	Products []ProductTotal
}

// ProductReport carries the per-month product rankings plus the
// all-time ranking. Months ascend; products within a bucket descend
// by quantity.
type ProductReport struct {
	Months []MonthProducts
	Totals []ProductTotal
}

func (r ProductReport) Empty() bool {
	return len(r.Months) == 0 && len(r.Totals) == 0
}

// ProductDaySales accumulates one product's sales within a single day.
type ProductDaySales struct {
	Product  string
	Quantity float64
	Price    float64
	Profit   float64
}

// DaySales lists one day's products, descending by quantity.
type DaySales struct {
	Day      string // YYYY-MM-DD
	Products []ProductDaySales
}

// WeeklyReport covers the current calendar week, Sunday through
// Saturday. Days ascend by day key.
type WeeklyReport struct {
	Start time.Time
	End   time.Time // exclusive, the following Sunday
	Days  []DaySales
}

func (r WeeklyReport) Empty() bool {
	return len(r.Days) == 0
}

// Chart entry kinds consumed by the chart renderer.
const (
	ChartKindPrice  = "price"
	ChartKindProfit = "profit"
)

// ChartEntry is the flat record shape the chart renderer consumes.
type ChartEntry struct {
	Label string
	Total float64
	Kind  string
}

// ChartEntries flattens the monthly report into price/profit bar
// values, preserving month order.
func (r MonthlyReport) ChartEntries() []ChartEntry {
	entries := make([]ChartEntry, 0, len(r.Months)*2)
	for _, m := range r.Months {
		entries = append(entries,
			ChartEntry{Label: m.Month, Total: m.Price, Kind: ChartKindPrice},
			ChartEntry{Label: m.Month, Total: m.Profit, Kind: ChartKindProfit},
		)
	}
	return entries
}
