package layout

import (
	"fmt"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// PointsPerMM converts millimeters to PDF points.
const PointsPerMM = 2.83465

// MM converts a millimeter value to points.
func MM(v float64) float64 {
	return v * PointsPerMM
}

// GeometrySpec is the user-declared layout, all values in millimeters.
// CardsPerRow is taken as layout intent; the row count is derived.
type GeometrySpec struct {
	PageWidthMM    float64
	PageHeightMM   float64
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
	CardWidthMM    float64
	CardHeightMM   float64
	CardsPerRow    int
}

// PageGeometry is the resolved grid in points, origin at the page's
// top-left. The grid is centered inside the usable area so duplex
// alignment survives small physical mis-registration.
type PageGeometry struct {
	PageWidth   float64
	PageHeight  float64
	CardWidth   float64
	CardHeight  float64
	CardsPerRow int
	CardsPerCol int
	OffsetLeft  float64
	OffsetTop   float64
}

// PlanGeometry resolves a GeometrySpec into a concrete grid. It fails when
// no card fits the page at all, or the declared grid plus margins exceeds
// the page.
func PlanGeometry(spec GeometrySpec) (PageGeometry, error) {
	if spec.CardsPerRow <= 0 {
		return PageGeometry{}, &GeometryError{Reason: fmt.Sprintf("cards per row must be positive, got %d", spec.CardsPerRow)}
	}
	if spec.CardWidthMM <= 0 || spec.CardHeightMM <= 0 || spec.PageWidthMM <= 0 || spec.PageHeightMM <= 0 {
		return PageGeometry{}, &GeometryError{Reason: "page and card dimensions must be positive"}
	}

	usableHeight := spec.PageHeightMM - spec.MarginTopMM - spec.MarginBottomMM
	cardsPerCol := int(usableHeight / spec.CardHeightMM)
	if cardsPerCol <= 0 {
		return PageGeometry{}, &GeometryError{Reason: "card size or margins too large for page"}
	}

	gridWidth := float64(spec.CardsPerRow) * spec.CardWidthMM
	gridHeight := float64(cardsPerCol) * spec.CardHeightMM
	if gridWidth+spec.MarginLeftMM+spec.MarginRightMM > spec.PageWidthMM {
		return PageGeometry{}, &GeometryError{Reason: "card grid with margins is too large for the page"}
	}

	leftoverWidth := spec.PageWidthMM - gridWidth - spec.MarginLeftMM - spec.MarginRightMM
	leftoverHeight := spec.PageHeightMM - gridHeight - spec.MarginTopMM - spec.MarginBottomMM

	return PageGeometry{
		PageWidth:   MM(spec.PageWidthMM),
		PageHeight:  MM(spec.PageHeightMM),
		CardWidth:   MM(spec.CardWidthMM),
		CardHeight:  MM(spec.CardHeightMM),
		CardsPerRow: spec.CardsPerRow,
		CardsPerCol: cardsPerCol,
		OffsetLeft:  MM(spec.MarginLeftMM + leftoverWidth/2),
		OffsetTop:   MM(spec.MarginTopMM + leftoverHeight/2),
	}, nil
}

// CardsPerPage is the grid's cell count.
func (g PageGeometry) CardsPerPage() int {
	return g.CardsPerRow * g.CardsPerCol
}

// Cell returns the CellPlan for a row-major grid position.
func (g PageGeometry) Cell(pos, cardIndex int) models.CellPlan {
	row := pos / g.CardsPerRow
	col := pos % g.CardsPerRow
	return models.CellPlan{
		X:         g.OffsetLeft + float64(col)*g.CardWidth,
		Y:         g.OffsetTop + float64(row)*g.CardHeight,
		Width:     g.CardWidth,
		Height:    g.CardHeight,
		CardIndex: cardIndex,
	}
}

// Paginate partitions numCards card indices into page-sized chunks of
// CellPlans in row-major order. The final chunk keeps a full grid of cells;
// slots past the last card are empty but retain their position so cut
// lines render uniformly on every page.
func (g PageGeometry) Paginate(numCards int) [][]models.CellPlan {
	perPage := g.CardsPerPage()
	numPages := (numCards + perPage - 1) / perPage

	pages := make([][]models.CellPlan, 0, numPages)
	for page := 0; page < numPages; page++ {
		cells := make([]models.CellPlan, perPage)
		for pos := 0; pos < perPage; pos++ {
			cardIndex := page*perPage + pos
			if cardIndex >= numCards {
				cardIndex = models.NoCard
			}
			cells[pos] = g.Cell(pos, cardIndex)
		}
		pages = append(pages, cells)
	}
	return pages
}
