package layout

import (
	"context"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

const (
	// InteriorInsetMM is subtracted from both cell dimensions before text
	// is fitted, leaving a 4 mm border on every edge.
	InteriorInsetMM = 8
	// BarHeightMM is the height of a top or bottom color bar; each enabled
	// bar reduces the text's vertical budget by this much.
	BarHeightMM = 5
)

// SideLayout carries the per-side inputs the fitter needs.
type SideLayout struct {
	Font      models.FontSpec
	BarTop    bool
	BarBottom bool
}

// DocumentSpec is everything the core needs to build a complete sheet plan
// from expanded records. All values come from the caller's configuration;
// the core holds no state of its own.
type DocumentSpec struct {
	Expand   ExpandSpec
	Geometry GeometrySpec
	FlipAxis FlipAxis
	Truncate bool
	Metrics  FontMetrics
	Front    SideLayout
	Back     SideLayout
}

// SideText is the fitted text for both faces of one card instance.
type SideText struct {
	Front models.FittedText
	Back  models.FittedText
}

// Document is the complete backend-independent sheet plan: resolved
// geometry, the expanded cards with their fitted text, and the ordered
// front/back page pairs. It is rebuilt in full on every run.
type Document struct {
	Geometry PageGeometry
	Cards    []models.CardInstance
	Text     []SideText
	Pairs    []models.PagePair
	Warnings []models.QtyWarning
}

// BuildDocument runs the whole core pipeline: expand quantities, resolve
// the grid, fit every card's text, paginate, and build duplex page pairs.
// It returns an *OverflowError when a card cannot fit and truncation is
// off; nothing is rendered in that case.
func BuildDocument(ctx context.Context, records []models.Record, spec DocumentSpec) (*Document, error) {
	expansion, err := ExpandQuantities(records, spec.Expand)
	if err != nil {
		return nil, err
	}

	geom, err := PlanGeometry(spec.Geometry)
	if err != nil {
		return nil, err
	}

	textWidth := geom.CardWidth - MM(InteriorInsetMM)

	// Duplicates of one record always fit identically, so fit once per
	// source row and share the result.
	cache := make(map[int]SideText)

	doc := &Document{
		Geometry: geom,
		Cards:    expansion.Cards,
		Text:     make([]SideText, len(expansion.Cards)),
		Warnings: expansion.Warnings,
	}

	fitSide := func(card models.CardInstance, side models.Side, layoutCfg SideLayout) (models.FittedText, error) {
		text := card.Front
		if side == models.SideBack {
			text = card.Back
		}
		height := geom.CardHeight - MM(InteriorInsetMM)
		if layoutCfg.BarTop {
			height -= MM(BarHeightMM)
		}
		if layoutCfg.BarBottom {
			height -= MM(BarHeightMM)
		}
		ft := FitText(text, layoutCfg.Font, spec.Metrics, textWidth, height, spec.Truncate)
		if ft.Overflowed && !spec.Truncate {
			return ft, &OverflowError{Row: card.SourceRow, Side: side}
		}
		return ft, nil
	}

	for i, card := range expansion.Cards {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if hit, ok := cache[card.SourceRow]; ok {
			doc.Text[i] = hit
			continue
		}

		front, err := fitSide(card, models.SideFront, spec.Front)
		if err != nil {
			return nil, err
		}
		back, err := fitSide(card, models.SideBack, spec.Back)
		if err != nil {
			return nil, err
		}

		st := SideText{Front: front, Back: back}
		cache[card.SourceRow] = st
		doc.Text[i] = st
	}

	for _, chunk := range geom.Paginate(len(expansion.Cards)) {
		doc.Pairs = append(doc.Pairs, BuildPagePair(chunk, geom.CardsPerRow, spec.FlipAxis))
	}

	return doc, nil
}
