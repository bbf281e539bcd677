// Package pdf draws paginated layout boxes onto PDF pages with fpdf.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/gompdf/leasedoc/internal/layout"
	"github.com/gompdf/leasedoc/internal/pagination"
	"github.com/gompdf/leasedoc/internal/style"
	"github.com/gompdf/leasedoc/internal/text"
)

// ErrNoPages is returned when there is nothing to render.
var ErrNoPages = errors.New("pdf: no pages to render")

const (
	checkboxSize   = 4.0
	signatureWidth = 80.0
	lineWidth      = 0.3
)

// Renderer handles rendering to PDF
type Renderer struct {
	// Styles supplies the footer style and fallback fonts.
	Styles *style.Stylesheet
	// Compress enables stream compression. Tests switch it off to inspect
	// the output.
	Compress bool
	// Debug logs each page as it is drawn.
	Debug  bool
	logger *zap.Logger
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// DocumentID is printed in every page footer.
	DocumentID string
	Margins    pagination.Margins
	// CreationDate is stamped into the PDF metadata. Zero means now.
	CreationDate time.Time
	// Logo is drawn in the top margin of the first page when set.
	Logo *Logo
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{
		Styles:   style.Default(""),
		Compress: true,
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger used for debug output.
func (r *Renderer) SetLogger(logger *zap.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Document is a rendered PDF held in memory.
type Document struct {
	ID    string
	data  []byte
	pages int
}

// Bytes returns the encoded PDF.
func (d *Document) Bytes() []byte {
	return d.data
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// WriteTo writes the PDF to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.data)
	return int64(n), err
}

// Save writes the PDF to path, creating parent directories as needed.
func (d *Document) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return os.WriteFile(path, d.data, 0o644)
}

type page struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	margins pagination.Margins
	width   float64
}

// Render renders pages to an in-memory PDF document
func (r *Renderer) Render(pages []*pagination.Page, options RenderOptions) (*Document, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pages[0].Width, Ht: pages[0].Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(options.Margins.Left, options.Margins.Top, options.Margins.Right)
	pdf.SetCompression(r.Compress)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	if !options.CreationDate.IsZero() {
		pdf.SetCreationDate(options.CreationDate)
	}
	pdf.SetLineWidth(lineWidth)

	pg := &page{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		margins: options.Margins,
	}

	total := len(pages)
	for _, p := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: p.Width, Ht: p.Height})
		pg.width = p.Width
		if r.Debug {
			r.logger.Debug("rendering page",
				zap.Int("page", p.Number),
				zap.Int("placements", len(p.Placements)))
		}
		for _, pl := range p.Placements {
			r.renderPlacement(pg, pl)
		}
		if p.Number == 1 && options.Logo != nil {
			drawLogo(pdf, options.Logo, p.Width, options.Margins)
		}
		r.renderFooter(pg, p, total, options.DocumentID)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}
	return &Document{ID: options.DocumentID, data: buf.Bytes(), pages: total}, nil
}

func (r *Renderer) renderPlacement(pg *page, pl pagination.Placement) {
	box := pl.Box
	st := box.Style
	x := pg.margins.Left
	contentWidth := pg.width - pg.margins.Left - pg.margins.Right
	setFont(pg.pdf, st)

	switch box.Block.Kind {
	case layout.KindRule:
		pg.pdf.Line(x, pl.Y, x+contentWidth, pl.Y)
		return

	case layout.KindField:
		for i, line := range pl.Lines() {
			y := baseline(pl.Y, i, st)
			if pl.First == 0 && i == 0 {
				bold := st
				bold.Style = "B"
				setFont(pg.pdf, bold)
				pg.pdf.Text(x+st.Indent, y, pg.tr(box.Block.Label+": "))
				setFont(pg.pdf, st)
			}
			pg.pdf.Text(x+box.TextOffset, y, pg.tr(line))
		}
		return

	case layout.KindBullet:
		if pl.First == 0 {
			pg.pdf.Text(x+st.Indent, baseline(pl.Y, 0, st), pg.tr(box.Block.Marker))
		}

	case layout.KindChecklistItem:
		if pl.First == 0 {
			top := pl.Y + (st.LineHeight-checkboxSize)/2
			pg.pdf.Rect(x, top, checkboxSize, checkboxSize, "D")
			if box.Block.Marker != "" {
				markerX := x + st.Indent
				if markerX < x+checkboxSize+2 {
					markerX = x + checkboxSize + 2
				}
				pg.pdf.Text(markerX, baseline(pl.Y, 0, st), pg.tr(box.Block.Marker))
			}
		}

	case layout.KindSignature:
		pg.pdf.Line(x, pl.Y, x+signatureWidth, pl.Y)
		for i, line := range pl.Lines() {
			pg.pdf.Text(x, baseline(pl.Y+1, i, st), pg.tr(line))
		}
		return
	}

	for i, line := range pl.Lines() {
		lx := x + box.TextOffset
		if st.Align == "C" {
			lx = x + (contentWidth-pg.pdf.GetStringWidth(pg.tr(line)))/2
		}
		pg.pdf.Text(lx, baseline(pl.Y, i, st), pg.tr(line))
	}
}

func (r *Renderer) renderFooter(pg *page, p *pagination.Page, total int, documentID string) {
	st := r.Styles.For(style.RoleFooter)
	setFont(pg.pdf, st)
	y := p.Height - pg.margins.Bottom/2

	label := fmt.Sprintf("Page %d of %d", p.Number, total)
	w := pg.pdf.GetStringWidth(label)
	pg.pdf.Text(p.Width-pg.margins.Right-w, y, label)

	if id := strings.TrimSpace(documentID); id != "" {
		pg.pdf.Text(pg.margins.Left, y, pg.tr("Document ID: "+id))
	}
}

func setFont(pdf *fpdf.Fpdf, st style.TextStyle) {
	size := st.Size
	if size <= 0 {
		size = 10
	}
	pdf.SetFont(layout.CoreFamily(st.Family), st.Style, size)
}

// baseline returns the text baseline of line i of a placement starting at
// top: the line is vertically centred on the cap height of its font.
func baseline(top float64, i int, st style.TextStyle) float64 {
	capHeight := st.Size * 0.7 * text.PointsToMM
	return top + float64(i)*st.LineHeight + (st.LineHeight+capHeight)/2
}
