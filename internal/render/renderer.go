package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/tiMaxal/cardhatch/internal/layout"
	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

var (
	cutLineColor = RGB{R: 0x88, G: 0x88, B: 0x88}
	cutLineWidth = 0.5
)

// SideStyle is the resolved appearance of one card face. Bar colors are
// nil when the bar is disabled.
type SideStyle struct {
	Font       models.FontSpec
	Text       RGB
	Background RGB
	BarTop     *RGB
	BarBottom  *RGB
}

// Renderer draws a planned Document into a PDF file, one page per front
// and one per back, alternating, so the file prints directly as a duplex
// job.
type Renderer struct {
	front SideStyle
	back  SideStyle
	log   *logger.Logger
}

func New(front, back SideStyle, log *logger.Logger) *Renderer {
	return &Renderer{front: front, back: back, log: log}
}

// Render writes the document to path. The document is already a complete
// plan; this stage only translates cells and fitted lines into drawing
// calls.
func (r *Renderer) Render(doc *layout.Document, path string) error {
	geom := doc.Geometry

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: geom.PageWidth, Ht: geom.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, pair := range doc.Pairs {
		r.log.Debug("Rendering page pair %d/%d", i+1, len(doc.Pairs))
		r.drawPage(pdf, tr, doc, pair.Front, models.SideFront, r.front)
		r.drawPage(pdf, tr, doc, pair.Back, models.SideBack, r.back)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (r *Renderer) drawPage(pdf *fpdf.Fpdf, tr func(string) string, doc *layout.Document, cells []models.CellPlan, side models.Side, style SideStyle) {
	pdf.AddPage()

	for _, cell := range cells {
		if cell.Empty() {
			continue
		}
		r.drawCell(pdf, tr, cell, side, doc.Text[cell.CardIndex], style)
	}

	drawCutLines(pdf, doc.Geometry)
}

func (r *Renderer) drawCell(pdf *fpdf.Fpdf, tr func(string) string, cell models.CellPlan, side models.Side, text layout.SideText, style SideStyle) {
	pdf.SetFillColor(style.Background.R, style.Background.G, style.Background.B)
	pdf.Rect(cell.X, cell.Y, cell.Width, cell.Height, "F")

	barHeight := layout.MM(layout.BarHeightMM)
	if style.BarTop != nil {
		pdf.SetFillColor(style.BarTop.R, style.BarTop.G, style.BarTop.B)
		pdf.Rect(cell.X, cell.Y, cell.Width, barHeight, "F")
	}
	if style.BarBottom != nil {
		pdf.SetFillColor(style.BarBottom.R, style.BarBottom.G, style.BarBottom.B)
		pdf.Rect(cell.X, cell.Y+cell.Height-barHeight, cell.Width, barHeight, "F")
	}

	fitted := text.Front
	if side == models.SideBack {
		fitted = text.Back
	}
	if len(fitted.Lines) == 0 {
		return
	}

	family, fontStyle := coreFont(style.Font)
	pdf.SetFont(family, fontStyle, style.Font.Size)
	pdf.SetTextColor(style.Text.R, style.Text.G, style.Text.B)

	lineHeight := style.Font.Size * LineSpacing
	blockHeight := float64(len(fitted.Lines)) * lineHeight
	blockTop := cell.Y + (cell.Height-blockHeight)/2

	for i, line := range fitted.Lines {
		if line == "" {
			continue
		}
		translated := tr(line)
		width := pdf.GetStringWidth(translated)
		x := cell.X + (cell.Width-width)/2
		baseline := blockTop + float64(i+1)*lineHeight
		pdf.Text(x, baseline, translated)
	}
}

// drawCutLines draws the guide grid across the full card area, both pages
// of a pair identically, so cuts stay valid whichever side faces up.
func drawCutLines(pdf *fpdf.Fpdf, geom layout.PageGeometry) {
	pdf.SetDrawColor(cutLineColor.R, cutLineColor.G, cutLineColor.B)
	pdf.SetLineWidth(cutLineWidth)

	for i := 0; i <= geom.CardsPerRow; i++ {
		x := geom.OffsetLeft + float64(i)*geom.CardWidth
		pdf.Line(x, geom.OffsetTop, x, geom.PageHeight-geom.OffsetTop)
	}
	for j := 0; j <= geom.CardsPerCol; j++ {
		y := geom.OffsetTop + float64(j)*geom.CardHeight
		pdf.Line(geom.OffsetLeft, y, geom.PageWidth-geom.OffsetLeft, y)
	}
}
