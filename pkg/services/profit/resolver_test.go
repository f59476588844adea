package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver()
	table := domain.GainTable{
		"Bolsa Grande": {"1": 10, "12": 100},
	}

	t.Run("recorded profit wins over rule lookup", func(t *testing.T) {
		got := resolver.Resolve("C$50.00", 120, "Bolsa Grande", "12", table)
		assert.Equal(t, 50.0, got)
	})

	t.Run("literal zero falls through to rules", func(t *testing.T) {
		got := resolver.Resolve("C$0", 120, "Bolsa Grande", "12", table)
		assert.Equal(t, 100.0, got)
	})

	t.Run("zero price never accrues rule profit", func(t *testing.T) {
		got := resolver.Resolve("", 0, "Bolsa Grande", "1", table)
		assert.Equal(t, 0.0, got)
	})

	t.Run("rule lookup is quantity-format insensitive", func(t *testing.T) {
		for _, q := range []string{"12", "12.0", "12.9"} {
			got := resolver.Resolve("", 120, "Bolsa Grande", q, table)
			assert.Equal(t, 100.0, got, q)
		}
	})

	t.Run("unknown product resolves to zero", func(t *testing.T) {
		got := resolver.Resolve("", 120, "Bolsa Misteriosa", "12", table)
		assert.Equal(t, 0.0, got)
	})

	t.Run("no matching rule resolves to zero", func(t *testing.T) {
		got := resolver.Resolve("", 120, "Bolsa Grande", "7", table)
		assert.Equal(t, 0.0, got)
	})

	t.Run("non-numeric quantity resolves to zero", func(t *testing.T) {
		got := resolver.Resolve("", 120, "Bolsa Grande", "doce", table)
		assert.Equal(t, 0.0, got)
	})

	t.Run("unparseable cleaned profit coerces to zero", func(t *testing.T) {
		got := resolver.Resolve("1.2.3", 120, "Bolsa Grande", "12", table)
		assert.Equal(t, 0.0, got)
	})

	t.Run("empty table without rules is zero", func(t *testing.T) {
		got := resolver.Resolve("", 120, "Bolsa Grande", "12", domain.GainTable{})
		assert.Equal(t, 0.0, got)
	})
}

func TestQuantityKey(t *testing.T) {
	for raw, want := range map[string]string{
		"12":   "12",
		"12.0": "12",
		"12.9": "12",
		" 3 ":  "3",
	} {
		key, ok := domain.QuantityKey(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, key, raw)
	}

	_, ok := domain.QuantityKey("doce")
	assert.False(t, ok)
}
