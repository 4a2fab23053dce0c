package render

import (
	"github.com/go-pdf/fpdf"

	"github.com/tiMaxal/cardhatch/pkg/models"
)

// LineSpacing scales font size into line height.
const LineSpacing = 1.2

var coreFamilies = map[string]string{
	"Helvetica":   "Helvetica",
	"Arial":       "Helvetica",
	"Times-Roman": "Times",
	"Courier":     "Courier",
}

var coreStyles = map[string]string{
	"Normal":     "",
	"Bold":       "B",
	"Italic":     "I",
	"BoldItalic": "BI",
}

// coreFont maps a FontSpec onto fpdf's built-in font set. Unknown families
// and styles fall back to plain Helvetica.
func coreFont(spec models.FontSpec) (family, style string) {
	family, ok := coreFamilies[spec.Family]
	if !ok {
		family = "Helvetica"
	}
	style, ok = coreStyles[spec.Style]
	if !ok {
		style = ""
	}
	return family, style
}

// CoreFontMetrics measures strings with fpdf's core font tables. It
// satisfies the layout engine's FontMetrics without writing any output.
type CoreFontMetrics struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func NewCoreFontMetrics() *CoreFontMetrics {
	pdf := fpdf.New("P", "pt", "A4", "")
	return &CoreFontMetrics{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (m *CoreFontMetrics) StringWidth(s string, spec models.FontSpec) float64 {
	family, style := coreFont(spec)
	m.pdf.SetFont(family, style, spec.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}

func (m *CoreFontMetrics) LineHeight(spec models.FontSpec) float64 {
	return spec.Size * LineSpacing
}
