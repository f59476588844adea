package analysis

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/services/profit"
	"github.com/ventas-tools/sales-atlas/pkg/services/sales"
)

// Analyzer runs the aggregation passes over the raw sales rows. Each
// pass is an independent reduction into fresh accumulators; rows are
// consumed in file order so ordering tie-breaks stay deterministic.
type Analyzer struct {
	resolver *profit.Resolver
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		resolver: profit.NewResolver(),
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides "today" for the weekly window.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// MonthlyTotals sums price and resolved profit per month. Price and
// profit always move together: a skipped row contributes to neither.
func (a *Analyzer) MonthlyTotals(rows [][]string, table domain.GainTable) domain.MonthlyReport {
	prices := make(map[string]float64)
	profits := make(map[string]float64)

	for i, fields := range rows {
		tx, skip := sales.ParseRow(fields, i+1, domain.ModeRevenue)
		if skip != nil {
			a.warnSkip(skip)
			continue
		}
		key := tx.MonthKey()
		prices[key] += tx.Price
		profits[key] += a.resolver.Resolve(tx.ProfitRaw, tx.Price, tx.Product, tx.QuantityRaw, table)
	}

	var report domain.MonthlyReport
	for _, key := range sortedKeys(prices) {
		report.Months = append(report.Months, domain.MonthTotal{
			Month:  key,
			Price:  prices[key],
			Profit: profits[key],
		})
	}
	return report
}

// ProductSales sums quantities per product, per month and all-time.
// Profit is not resolved here, so four fields suffice and no gain
// table is needed; rows with a non-numeric quantity are skipped.
func (a *Analyzer) ProductSales(rows [][]string) domain.ProductReport {
	monthly := make(map[string]*productAcc)
	totals := newProductAcc()

	for i, fields := range rows {
		tx, skip := sales.ParseRow(fields, i+1, domain.ModeQuantity)
		if skip != nil {
			a.warnSkip(skip)
			continue
		}
		if !tx.QuantityOK {
			a.logger.Warn().Int("row", tx.Row).Str("quantity", tx.QuantityRaw).
				Msg("skipping row with non-numeric quantity")
			continue
		}
		key := tx.MonthKey()
		acc, ok := monthly[key]
		if !ok {
			acc = newProductAcc()
			monthly[key] = acc
		}
		acc.add(tx.Product, tx.Quantity)
		totals.add(tx.Product, tx.Quantity)
	}

	var report domain.ProductReport
	for _, key := range sortedKeys(monthly) {
		report.Months = append(report.Months, domain.MonthProducts{
			Month:    key,
			Products: monthly[key].ranked(),
		})
	}
	report.Totals = totals.ranked()
	return report
}

// WeeklySales accumulates quantity, price and resolved profit per day
// and product for transactions inside the current calendar week,
// Sunday 00:00 through the following Sunday exclusive, local time.
func (a *Analyzer) WeeklySales(rows [][]string, table domain.GainTable) domain.WeeklyReport {
	now := a.now()
	start := weekStart(now)
	end := start.AddDate(0, 0, 7)

	days := make(map[string]*dayAcc)
	for i, fields := range rows {
		tx, skip := sales.ParseRow(fields, i+1, domain.ModeRevenue)
		if skip != nil {
			a.warnSkip(skip)
			continue
		}
		if !tx.QuantityOK {
			a.logger.Warn().Int("row", tx.Row).Str("quantity", tx.QuantityRaw).
				Msg("skipping row with non-numeric quantity")
			continue
		}
		date := tx.Date(now.Location())
		if date.Before(start) || !date.Before(end) {
			continue
		}
		key := tx.DayKey()
		acc, ok := days[key]
		if !ok {
			acc = newDayAcc()
			days[key] = acc
		}
		resolved := a.resolver.Resolve(tx.ProfitRaw, tx.Price, tx.Product, tx.QuantityRaw, table)
		acc.add(tx.Product, tx.Quantity, tx.Price, resolved)
	}

	report := domain.WeeklyReport{Start: start, End: end}
	for _, key := range sortedKeys(days) {
		report.Days = append(report.Days, domain.DaySales{
			Day:      key,
			Products: days[key].ranked(),
		})
	}
	return report
}

func (a *Analyzer) warnSkip(skip *sales.Skip) {
	a.logger.Warn().Int("row", skip.Row).Str("reason", skip.Reason).Msg("skipping sales row")
}

// weekStart returns the Sunday 00:00 opening the week containing t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
