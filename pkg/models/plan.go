package models

// NoCard marks a CellPlan slot that holds no card instance. Such cells are
// still rendered (cut lines, no content) so front and back grids keep
// identical cell counts and positions.
const NoCard = -1

// CellPlan is one fixed-position slot in a page grid. Coordinates are in PDF
// points with the origin at the top-left of the page.
type CellPlan struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	CardIndex int
}

// Empty reports whether the cell carries no card instance.
func (c CellPlan) Empty() bool {
	return c.CardIndex == NoCard
}

// PagePair is one sheet: a front page and the back page that must land
// behind it after the physical flip. front[i] and back[i] occupy the same
// position on paper; their card indices are paired by the flip transform.
type PagePair struct {
	Front []CellPlan
	Back  []CellPlan
}

// FittedText is the result of wrapping one text block into a cell: the
// final lines to draw plus whether the block exceeded the cell's capacity.
type FittedText struct {
	Lines      []string
	Overflowed bool
}
