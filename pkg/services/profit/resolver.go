package profit

import (
	"strconv"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/services/sales"
)

// Resolver determines the authoritative profit for a transaction.
// The recorded value on the row wins, then the gain-rule table, then
// zero.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve applies the fallback chain:
//
//  1. A cleaned, non-empty recorded profit other than the literal "0"
//     is authoritative. A literal "0" falls through, so rows the
//     export zero-filled still get a rule lookup.
//  2. Zero-price rows resolve to zero: complimentary items must not
//     accrue rule-based profit.
//  3. A gain rule matched on the canonicalized quantity key.
//  4. Zero.
func (r *Resolver) Resolve(profitRaw string, price float64, product, quantityRaw string, table domain.GainTable) float64 {
	cleaned := sales.CleanNumber(profitRaw)
	if cleaned != "" && cleaned != "0" {
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return v
	}

	if price == 0 {
		return 0
	}

	if amount, ok := table.Amount(product, quantityRaw); ok {
		return amount
	}
	return 0
}
