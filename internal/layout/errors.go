package layout

import (
	"fmt"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// OverflowError aborts a run when a card's text needs more lines than its
// cell can hold and truncation is disabled. A partially valid sheet must
// never be written, so this is fatal rather than a per-card skip.
type OverflowError struct {
	Row  int
	Side models.Side
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("text does not fit on card for data row %d (%s side): enable truncate or edit the data", e.Row+1, e.Side)
}

// GeometryError reports a page/card/margin combination no grid fits into.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "invalid layout geometry: " + e.Reason
}
