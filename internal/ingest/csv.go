package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

// CSVReader parses UTF-8 CSV files. Cells may carry real newlines inside
// quoted fields, or the literal two-character sequence `\n`, which is
// unescaped before parsing so either spelling produces multi-line cards.
type CSVReader struct {
	log *logger.Logger
}

func NewCSVReader(log *logger.Logger) *CSVReader {
	return &CSVReader{log: log}
}

func (r *CSVReader) Read(ctx context.Context, path string) (Table, error) {
	select {
	case <-ctx.Done():
		return Table{}, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read input file: %w", err)
	}

	content := strings.ReplaceAll(string(data), `\n`, "\n")

	cr := csv.NewReader(strings.NewReader(content))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("input file %s has no header row", path)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := Table{Headers: headers}
	for i, row := range rows[1:] {
		fields := make(map[string]string, len(headers))
		for col, name := range headers {
			if col < len(row) {
				fields[name] = row[col]
			} else {
				fields[name] = ""
			}
		}
		table.Records = append(table.Records, models.Record{Index: i, Fields: fields})
	}

	r.log.Debug("Read %d rows with %d columns from %s", len(table.Records), len(headers), path)
	return table, nil
}
