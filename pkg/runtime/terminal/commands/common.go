package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/services/config"
	"github.com/ventas-tools/sales-atlas/pkg/services/gains"
	"github.com/ventas-tools/sales-atlas/pkg/services/sales"
)

// inputs bundle everything a reporting command reads before
// aggregation starts. The gain table stays nil for commands that do
// not resolve profit.
type inputs struct {
	profile *config.Profile
	rows    [][]string
	table   domain.GainTable
}

func loadInputs(logger zerolog.Logger, profilePath string, needGains bool) (*inputs, error) {
	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}

	rows, err := sales.NewReader(logger).ReadFile(profile.SalesFile)
	if err != nil {
		return nil, err
	}

	in := &inputs{profile: profile, rows: rows}
	if needGains {
		table, err := gains.NewParser(logger).Parse(profile.GainsFile)
		if err != nil {
			return nil, fmt.Errorf("gain rules unavailable: %w", err)
		}
		in.table = table
	}
	return in, nil
}

// openOutput returns the writer for a report: the given file when a
// path was set, otherwise the fallback (usually stdout).
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
