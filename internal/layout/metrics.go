package layout

import (
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/leasedoc/internal/text"
)

// Shared PDF instance for text measurement using core font metrics.
var (
	measureOnce sync.Once
	measurePDF  *fpdf.Fpdf
	measureTr   func(string) string
	measureMu   sync.Mutex
)

func initMeasurePDF() {
	measurePDF = fpdf.New("P", "mm", "A4", "")
	measurePDF.SetFont("Helvetica", "", 10)
	measureTr = measurePDF.UnicodeTranslatorFromDescriptor("")
}

// FontMeasurer measures text with the metrics of the PDF core fonts, so
// wrapping decisions match what the renderer draws.
type FontMeasurer struct{}

// Width implements text.Measurer.
func (FontMeasurer) Width(s string, font text.Font) float64 {
	if s == "" || font.Size <= 0 {
		return 0
	}
	measureOnce.Do(initMeasurePDF)
	measureMu.Lock()
	defer measureMu.Unlock()
	measurePDF.SetFont(CoreFamily(font.Family), font.Style, font.Size)
	return measurePDF.GetStringWidth(measureTr(s))
}

// CoreFamily maps a family name to one of the PDF core fonts.
func CoreFamily(family string) string {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "times", "times new roman", "serif":
		return "Times"
	case "courier", "courier new", "monospace":
		return "Courier"
	default:
		return "Helvetica"
	}
}
