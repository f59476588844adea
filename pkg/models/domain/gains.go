package domain

import (
	"strconv"
	"strings"
)

// GainRule maps a canonical quantity key (integer rendered as a
// string, e.g. "12") to the profit amount for that quantity.
type GainRule map[string]float64

// GainTable maps a product name to its gain rules. Every product line
// in the rule list gets an entry, even when none of its rules parsed;
// an absent product and a product with zero rules are distinct states.
// The table is built once per run and never mutated afterwards.
type GainTable map[string]GainRule

// QuantityKey canonicalizes a quantity string to the integer rule key,
// so "12", "12.0" and "12.9" all resolve to "12". Returns false when
// the string is not numeric.
func QuantityKey(raw string) (string, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(int(f)), true
}

// Amount looks up the rule amount for a product and a raw quantity
// string, canonicalizing the quantity first.
func (t GainTable) Amount(product, quantityRaw string) (float64, bool) {
	rules, ok := t[product]
	if !ok {
		return 0, false
	}
	key, ok := QuantityKey(quantityRaw)
	if !ok {
		return 0, false
	}
	amount, ok := rules[key]
	return amount, ok
}
