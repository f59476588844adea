package analysis

import (
	"sort"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

// productAcc sums quantities per product while remembering first-seen
// order, which is the tie-break when two products sold the same
// amount.
type productAcc struct {
	quantities map[string]float64
	order      []string
}

func newProductAcc() *productAcc {
	return &productAcc{quantities: make(map[string]float64)}
}

func (a *productAcc) add(product string, quantity float64) {
	if _, seen := a.quantities[product]; !seen {
		a.order = append(a.order, product)
	}
	a.quantities[product] += quantity
}

// ranked returns products descending by quantity; the stable sort
// keeps insertion order for ties.
func (a *productAcc) ranked() []domain.ProductTotal {
	out := make([]domain.ProductTotal, 0, len(a.order))
	for _, product := range a.order {
		out = append(out, domain.ProductTotal{Product: product, Quantity: a.quantities[product]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})
	return out
}

// dayAcc sums quantity, price and profit per product for one day,
// preserving first-seen order like productAcc.
type dayAcc struct {
	products map[string]*domain.ProductDaySales
	order    []string
}

func newDayAcc() *dayAcc {
	return &dayAcc{products: make(map[string]*domain.ProductDaySales)}
}

func (a *dayAcc) add(product string, quantity, price, profit float64) {
	entry, seen := a.products[product]
	if !seen {
		entry = &domain.ProductDaySales{Product: product}
		a.products[product] = entry
		a.order = append(a.order, product)
	}
	entry.Quantity += quantity
	entry.Price += price
	entry.Profit += profit
}

func (a *dayAcc) ranked() []domain.ProductDaySales {
	out := make([]domain.ProductDaySales, 0, len(a.order))
	for _, product := range a.order {
		out = append(out, *a.products[product])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity > out[j].Quantity
	})
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
