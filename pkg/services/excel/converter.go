package excel

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Converter extracts one worksheet from the downloaded workbook into
// the headerless CSV the analysis pipeline consumes.
type Converter struct {
	logger zerolog.Logger
}

func NewConverter(logger zerolog.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert reads the named sheet from the workbook at xlsxPath and
// writes its rows verbatim to csvPath.
func (c *Converter) Convert(xlsxPath, sheet, csvPath string) error {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", xlsxPath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	out, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", csvPath, err)
	}

	w := csv.NewWriter(out)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			out.Close()
			return fmt.Errorf("failed to write %s: %w", csvPath, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", csvPath, err)
	}

	c.logger.Info().Str("sheet", sheet).Int("rows", len(rows)).Str("csv", csvPath).
		Msg("converted workbook sheet")
	return out.Close()
}
