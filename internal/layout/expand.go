package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// ExpandSpec tells the expander where to find its columns and how many
// copies of each card to emit.
type ExpandSpec struct {
	FrontColumn  string
	BackColumn   string
	QtyColumn    string
	UseQtyColumn bool
	Multiplier   int
}

// Expansion is the expander's output: one CardInstance per physical card,
// plus the qty cells that had to be defaulted.
type Expansion struct {
	Cards    []models.CardInstance
	Warnings []models.QtyWarning
}

// ExpandQuantities turns records into card instances. Each record yields
// qty*multiplier instances; duplicates are contiguous and record order is
// preserved. A qty cell that is missing, empty, non-numeric, fractional,
// zero or negative counts as 1 and is reported as a warning, never an error.
func ExpandQuantities(records []models.Record, spec ExpandSpec) (Expansion, error) {
	if spec.Multiplier < 1 {
		return Expansion{}, fmt.Errorf("multiplier must be at least 1, got %d", spec.Multiplier)
	}

	var out Expansion
	for _, rec := range records {
		qty := 1
		if spec.UseQtyColumn {
			raw := rec.Get(spec.QtyColumn)
			parsed, ok := parseQty(raw)
			if !ok {
				out.Warnings = append(out.Warnings, models.QtyWarning{Row: rec.Index, Value: raw})
			} else {
				qty = parsed
			}
		}

		card := models.CardInstance{
			Front:     rec.Get(spec.FrontColumn),
			Back:      rec.Get(spec.BackColumn),
			SourceRow: rec.Index,
		}
		for i := 0; i < qty*spec.Multiplier; i++ {
			out.Cards = append(out.Cards, card)
		}
	}

	return out, nil
}

// parseQty accepts only positive integers. Fractional values like "2.5"
// are rejected rather than rounded.
func parseQty(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
