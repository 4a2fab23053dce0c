package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

// Table is one parsed input file: the header row plus the data rows in
// file order.
type Table struct {
	Headers []string
	Records []models.Record
}

// HasColumn reports whether the header row declares the named column.
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// MissingColumnError is fatal: the run cannot proceed without the declared
// front/back (and, when enabled, qty) columns.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing columns in data: " + strings.Join(e.Columns, ", ")
}

// CheckColumns verifies every required column exists, collecting all
// missing names into a single error.
func (t Table) CheckColumns(required ...string) error {
	var missing []string
	for _, col := range required {
		if col != "" && !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}

// Reader parses one tabular input file into a Table. CSV is the only
// built-in backend; spreadsheet formats plug in here.
type Reader interface {
	Read(ctx context.Context, path string) (Table, error)
}

// ForFile picks a Reader by file extension.
func ForFile(path string, log *logger.Logger) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVReader(log), nil
	}
	return nil, fmt.Errorf("unsupported input format %q: want a .csv file", filepath.Ext(path))
}
