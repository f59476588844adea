package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Reader loads the headerless sales export into ordered raw rows.
// Rows the CSV layer cannot parse are skipped with a warning; a file
// that cannot be opened aborts the run.
type Reader struct {
	logger zerolog.Logger
}

func NewReader(logger zerolog.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadFile reads every record from the sales CSV at path, in file
// order. Records may have varying field counts and quoted values.
func (r *Reader) ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	rowNo := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNo++
		if err != nil {
			r.logger.Warn().Int("row", rowNo).Err(err).Msg("skipping unreadable sales row")
			continue
		}
		if rowNo == 1 && len(record) > 0 {
			// Exports produced with a UTF-8 BOM keep it glued to the
			// first field.
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		rows = append(rows, record)
	}
	return rows, nil
}
