package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/tiMaxal/cardhatch/internal/config"
	"github.com/tiMaxal/cardhatch/internal/ingest"
	"github.com/tiMaxal/cardhatch/internal/layout"
	"github.com/tiMaxal/cardhatch/internal/render"
	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

// Pipeline wires ingestion, the layout core, and the renderer into one run.
// Every run rebuilds the whole document from the input file; no state is
// kept between runs.
type Pipeline struct {
	cfg *config.Config
	log *logger.Logger
}

func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, log: log}
}

// Run executes one full generation: read the input, plan the document,
// render the PDF, and verify the written page count. Fatal conditions
// surface before any output file exists.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{StartTime: time.Now()}

	if err := p.cfg.Validate(); err != nil {
		return report, err
	}

	reader, err := ingest.ForFile(p.cfg.Input, p.log)
	if err != nil {
		return report, err
	}

	p.log.Info("Reading input: %s", p.cfg.Input)
	table, err := reader.Read(ctx, p.cfg.Input)
	if err != nil {
		return report, err
	}
	report.RowsRead = len(table.Records)

	required := []string{p.cfg.Columns.Front, p.cfg.Columns.Back}
	if p.cfg.UseQtyColumn {
		required = append(required, p.cfg.Columns.Qty)
	}
	if err := table.CheckColumns(required...); err != nil {
		return report, err
	}

	spec, err := p.documentSpec()
	if err != nil {
		return report, err
	}

	doc, err := layout.BuildDocument(ctx, table.Records, spec)
	if err != nil {
		return report, err
	}
	report.CardsPlanned = len(doc.Cards)
	report.PagePairs = len(doc.Pairs)
	report.Warnings = doc.Warnings

	p.log.Info("Planned %d cards across %d page pairs (%dx%d grid)",
		len(doc.Cards), len(doc.Pairs), doc.Geometry.CardsPerRow, doc.Geometry.CardsPerCol)

	for i, st := range doc.Text {
		if st.Front.Overflowed {
			p.log.Warn("Truncated front text for data row %d", doc.Cards[i].SourceRow+1)
		}
		if st.Back.Overflowed {
			p.log.Warn("Truncated back text for data row %d", doc.Cards[i].SourceRow+1)
		}
	}

	frontStyle, err := sideStyle(p.cfg.Front)
	if err != nil {
		return report, fmt.Errorf("front side: %w", err)
	}
	backStyle, err := sideStyle(p.cfg.Back)
	if err != nil {
		return report, fmt.Errorf("back side: %w", err)
	}

	renderer := render.New(frontStyle, backStyle, p.log)
	if err := renderer.Render(doc, p.cfg.Output); err != nil {
		return report, err
	}

	pages, err := api.PageCountFile(p.cfg.Output)
	if err != nil {
		return report, fmt.Errorf("failed to verify output: %w", err)
	}
	if pages != 2*len(doc.Pairs) {
		return report, fmt.Errorf("output verification failed: %s has %d pages, want %d", p.cfg.Output, pages, 2*len(doc.Pairs))
	}
	report.PagesWritten = pages

	p.log.Info("Wrote %s (%d pages)", p.cfg.Output, pages)
	report.EndTime = time.Now()
	return report, nil
}

func (p *Pipeline) documentSpec() (layout.DocumentSpec, error) {
	flip, err := layout.ParseFlipAxis(p.cfg.FlipAxis)
	if err != nil {
		return layout.DocumentSpec{}, err
	}

	return layout.DocumentSpec{
		Expand: layout.ExpandSpec{
			FrontColumn:  p.cfg.Columns.Front,
			BackColumn:   p.cfg.Columns.Back,
			QtyColumn:    p.cfg.Columns.Qty,
			UseQtyColumn: p.cfg.UseQtyColumn,
			Multiplier:   p.cfg.Multiplier,
		},
		Geometry: layout.GeometrySpec{
			PageWidthMM:    p.cfg.Page.WidthMM,
			PageHeightMM:   p.cfg.Page.HeightMM,
			MarginTopMM:    p.cfg.Page.Margins.Top,
			MarginBottomMM: p.cfg.Page.Margins.Bottom,
			MarginLeftMM:   p.cfg.Page.Margins.Left,
			MarginRightMM:  p.cfg.Page.Margins.Right,
			CardWidthMM:    p.cfg.Layout.CardWidthMM,
			CardHeightMM:   p.cfg.Layout.CardHeightMM,
			CardsPerRow:    p.cfg.Layout.CardsPerRow,
		},
		FlipAxis: flip,
		Truncate: p.cfg.Truncate,
		Metrics:  render.NewCoreFontMetrics(),
		Front:    sideLayout(p.cfg.Front),
		Back:     sideLayout(p.cfg.Back),
	}, nil
}

func sideLayout(side config.SideConfig) layout.SideLayout {
	return layout.SideLayout{
		Font: models.FontSpec{
			Family: side.Font.Family,
			Size:   side.Font.Size,
			Style:  side.Font.Style,
		},
		BarTop:    side.BarTop.Enabled,
		BarBottom: side.BarBottom.Enabled,
	}
}

func sideStyle(side config.SideConfig) (render.SideStyle, error) {
	text, err := render.ParseHexColor(side.TextColor)
	if err != nil {
		return render.SideStyle{}, err
	}
	bg, err := render.ParseHexColor(side.BackgroundColor)
	if err != nil {
		return render.SideStyle{}, err
	}

	style := render.SideStyle{
		Font: models.FontSpec{
			Family: side.Font.Family,
			Size:   side.Font.Size,
			Style:  side.Font.Style,
		},
		Text:       text,
		Background: bg,
	}

	if side.BarTop.Enabled {
		c, err := render.ParseHexColor(side.BarTop.Color)
		if err != nil {
			return render.SideStyle{}, err
		}
		style.BarTop = &c
	}
	if side.BarBottom.Enabled {
		c, err := render.ParseHexColor(side.BarBottom.Color)
		if err != nil {
			return render.SideStyle{}, err
		}
		style.BarBottom = &c
	}

	return style, nil
}
