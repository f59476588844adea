package sales

import (
	"strconv"
	"strings"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

// Column positions in the headerless export.
const (
	colProduct = iota
	colQuantity
	colPrice
	colDate
	colProfit
)

// Skip reports why a raw row was dropped. Skipped rows are logged and
// excluded from every aggregate; they are never counted as zero.
type Skip struct {
	Row    int // 1-based
	Reason string
}

var quantityCleaner = strings.NewReplacer(`"`, "", ",", "")

// ParseRow normalizes one raw CSV row into a transaction, or explains
// why the row cannot be used. A non-numeric quantity is not a skip
// here — only the passes that need quantity reject it.
func ParseRow(fields []string, row int, mode domain.ParseMode) (*domain.Transaction, *Skip) {
	if len(fields) < mode.MinFields() {
		return nil, &Skip{Row: row, Reason: "insufficient fields"}
	}

	product := strings.TrimSpace(fields[colProduct])
	if product == "" {
		return nil, &Skip{Row: row, Reason: "missing product name"}
	}

	quantityRaw := strings.TrimSpace(quantityCleaner.Replace(fields[colQuantity]))
	quantity, qtyErr := strconv.ParseFloat(quantityRaw, 64)

	price := ParseAmount(fields[colPrice])

	dateRaw := strings.TrimSpace(fields[colDate])
	if dateRaw == "" {
		return nil, &Skip{Row: row, Reason: "missing date"}
	}
	dateParts := strings.Split(dateRaw, "/")
	if len(dateParts) < 3 {
		return nil, &Skip{Row: row, Reason: "malformed date"}
	}
	month, errM := strconv.Atoi(strings.TrimSpace(dateParts[0]))
	day, errD := strconv.Atoi(strings.TrimSpace(dateParts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(dateParts[2]))
	if errM != nil || errD != nil || errY != nil {
		return nil, &Skip{Row: row, Reason: "malformed date"}
	}

	profitRaw := "0"
	if len(fields) > colProfit && strings.TrimSpace(fields[colProfit]) != "" {
		profitRaw = fields[colProfit]
	}

	return &domain.Transaction{
		Row:         row,
		Product:     product,
		QuantityRaw: quantityRaw,
		Quantity:    quantity,
		QuantityOK:  qtyErr == nil,
		Price:       price,
		Month:       month,
		Day:         day,
		Year:        year,
		ProfitRaw:   profitRaw,
	}, nil
}
