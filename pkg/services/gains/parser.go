package gains

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

// Lines look like "Bolsa Grande   1:10,12:100": a product name, a run
// of two or more whitespace characters, then comma-separated
// quantity:gain rules.
var nameRulesSplit = regexp.MustCompile(`\s{2,}`)

// Parser reads the gain-rule list into a lookup table.
type Parser struct {
	logger zerolog.Logger
}

func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse builds the gain table from the rule list at path. A missing or
// unreadable file is an error, never an empty table — callers cannot
// resolve profit without knowing whether rules exist. Individual rules
// that fail to parse are skipped with a warning; the product line
// itself always produces a table entry.
func (p *Parser) Parse(path string) (domain.GainTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gain rule list %s: %w", path, err)
	}
	defer f.Close()

	table := make(domain.GainTable)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := nameRulesSplit.Split(line, 2)
		product := strings.TrimSpace(parts[0])
		rules, ok := table[product]
		if !ok {
			rules = make(domain.GainRule)
			table[product] = rules
		}

		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			continue
		}

		for _, raw := range strings.Split(parts[1], ",") {
			if !strings.Contains(raw, ":") {
				continue
			}
			kv := strings.SplitN(raw, ":", 2)
			key := strings.TrimSpace(kv[0])
			amount, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
			if err != nil {
				p.logger.Warn().
					Int("line", lineNo).
					Str("product", product).
					Str("rule", strings.TrimSpace(raw)).
					Msg("skipping gain rule with invalid amount")
				continue
			}
			rules[key] = amount
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gain rule list %s: %w", path, err)
	}
	return table, nil
}
