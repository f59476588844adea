package domain

import (
	"fmt"
	"time"
)

// ParseMode selects how many raw fields a sales row must carry.
// Revenue passes resolve profit and need the fifth column; quantity
// passes only need product through date.
type ParseMode int

const (
	ModeRevenue ParseMode = iota
	ModeQuantity
)

// MinFields returns the minimum raw field count for the mode.
func (m ParseMode) MinFields() int {
	if m == ModeQuantity {
		return 4
	}
	return 5
}

// Transaction is one sales row after normalization. Dates are kept as
// the raw month/day/year integers from the export; no calendar-range
// validation happens beyond integer parsing.
type Transaction struct {
	Row         int // 1-based row in the source file
	Product     string
	QuantityRaw string // quotes and thousands separators removed
	Quantity    float64
	QuantityOK  bool // false when QuantityRaw is not numeric
	Price       float64
	Month       int
	Day         int
	Year        int
	ProfitRaw   string // recorded profit field, "0" when blank
}

// MonthKey buckets the transaction by month, e.g. "2024-03".
func (t Transaction) MonthKey() string {
	return fmt.Sprintf("%d-%02d", t.Year, t.Month)
}

// DayKey buckets the transaction by day, e.g. "2024-03-07".
func (t Transaction) DayKey() string {
	return fmt.Sprintf("%d-%02d-%02d", t.Year, t.Month, t.Day)
}

// Date materializes the transaction date at midnight in loc.
func (t Transaction) Date(loc *time.Location) time.Time {
	return time.Date(t.Year, time.Month(t.Month), t.Day, 0, 0, 0, 0, loc)
}
