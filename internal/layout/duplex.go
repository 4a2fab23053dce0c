package layout

import (
	"fmt"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// FlipAxis is the physical edge the printed sheet turns about.
type FlipAxis int

const (
	// FlipLongEdge is a side-to-side flip: it mirrors the sheet
	// horizontally, so each back row runs right-to-left.
	FlipLongEdge FlipAxis = iota
	// FlipShortEdge is a top-to-bottom flip: it inverts both axes, so the
	// back grid is the front grid rotated 180 degrees.
	FlipShortEdge
)

func ParseFlipAxis(s string) (FlipAxis, error) {
	switch s {
	case "long":
		return FlipLongEdge, nil
	case "short":
		return FlipShortEdge, nil
	}
	return 0, fmt.Errorf("unknown flip axis %q (want %q or %q)", s, "long", "short")
}

func (a FlipAxis) String() string {
	if a == FlipShortEdge {
		return "short"
	}
	return "long"
}

// BuildPagePair produces the front/back pages for one chunk of cells. The
// front is the chunk unchanged. The back keeps every cell's position but
// reorders which card each position holds, so that after the physical flip
// each back lands exactly behind its front. Empty cells reorder like any
// other; the mapping depends only on position.
func BuildPagePair(cells []models.CellPlan, cardsPerRow int, axis FlipAxis) models.PagePair {
	order := make([]int, len(cells))
	for i, c := range cells {
		order[i] = c.CardIndex
	}

	switch axis {
	case FlipShortEdge:
		order = rotate180(order)
	default:
		order = mirrorRows(order, cardsPerRow)
	}

	back := make([]models.CellPlan, len(cells))
	for i, c := range cells {
		c.CardIndex = order[i]
		back[i] = c
	}

	front := make([]models.CellPlan, len(cells))
	copy(front, cells)

	return models.PagePair{Front: front, Back: back}
}

// mirrorRows reverses each row's left-to-right order, keeping rows in place.
func mirrorRows(order []int, cardsPerRow int) []int {
	out := make([]int, len(order))
	for start := 0; start < len(order); start += cardsPerRow {
		for i := 0; i < cardsPerRow; i++ {
			out[start+i] = order[start+cardsPerRow-1-i]
		}
	}
	return out
}

// rotate180 reverses the whole row-major sequence, which for a rectangular
// grid equals rotating it half a turn.
func rotate180(order []int) []int {
	out := make([]int, len(order))
	for i, v := range order {
		out[len(order)-1-i] = v
	}
	return out
}
