package pagination

import (
	"errors"
	"fmt"
	"math"

	"github.com/gompdf/leasedoc/internal/layout"
)

// ErrPageLimit is returned when content needs more pages than allowed.
var ErrPageLimit = errors.New("pagination: page limit exceeded")

// epsilon absorbs floating point drift when comparing positions.
const epsilon = 1e-6

// Page represents a single page in the document
type Page struct {
	Number     int
	Width      float64
	Height     float64
	Placements []Placement
}

// Placement positions lines [First, Last) of a box on a page. Y is the top
// of the first line in millimetres from the top edge of the page.
type Placement struct {
	Box   *layout.Box
	Y     float64
	First int
	Last  int
}

// Lines returns the placed lines.
func (p Placement) Lines() []string {
	return p.Box.Lines[p.First:p.Last]
}

// Continued reports whether the placement continues a box started on an
// earlier page.
func (p Placement) Continued() bool {
	return p.First > 0
}

// PageSize represents standard page sizes
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Standard page sizes in millimetres
var (
	PageSizeA4     = PageSize{Width: 210, Height: 297, Name: "A4"}
	PageSizeLetter = PageSize{Width: 215.9, Height: 279.4, Name: "Letter"}
	PageSizeLegal  = PageSize{Width: 215.9, Height: 355.6, Name: "Legal"}
)

// Margins represents page margins
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Paginator handles breaking content into pages
type Paginator struct {
	PageSize PageSize
	Margins  Margins
	// MaxPages bounds the output. Zero means unlimited.
	MaxPages int
	// MinLines is the smallest number of lines of a split box left at the
	// bottom of a page or carried to the next one. Zero means 2.
	MinLines int
}

// NewPaginator creates a new paginator
func NewPaginator(pageSize PageSize, margins Margins) *Paginator {
	return &Paginator{
		PageSize: pageSize,
		Margins:  margins,
	}
}

// ContentWidth returns the usable width between the side margins.
func (p *Paginator) ContentWidth() float64 {
	return p.PageSize.Width - p.Margins.Left - p.Margins.Right
}

// ContentHeight returns the usable height between the top and bottom margins.
func (p *Paginator) ContentHeight() float64 {
	return p.PageSize.Height - p.Margins.Top - p.Margins.Bottom
}

type cursor struct {
	p      *Paginator
	pages  []*Page
	page   *Page
	y      float64
	bottom float64
}

func (c *cursor) atTop() bool {
	return len(c.page.Placements) == 0
}

func (c *cursor) newPage() error {
	if c.p.MaxPages > 0 && len(c.pages) >= c.p.MaxPages {
		return fmt.Errorf("%w: content needs more than %d pages", ErrPageLimit, c.p.MaxPages)
	}
	c.page = &Page{
		Number: len(c.pages) + 1,
		Width:  c.p.PageSize.Width,
		Height: c.p.PageSize.Height,
	}
	c.pages = append(c.pages, c.page)
	c.y = c.p.Margins.Top
	return nil
}

// fits reports whether a span of the given height fits below the cursor.
func (c *cursor) fits(height float64) bool {
	return c.y+height <= c.bottom+epsilon
}

func (c *cursor) place(box *layout.Box, first, last int) {
	if first == 0 && !c.atTop() {
		c.y += box.Style.SpaceBefore
	}
	c.page.Placements = append(c.page.Placements, Placement{Box: box, Y: c.y, First: first, Last: last})
	c.y += box.LinesHeight(first, last)
	if last == len(box.Lines) {
		c.y += box.Style.SpaceAfter
	}
}

// Paginate distributes boxes over pages in order. Boxes that may split are
// broken between lines; everything else moves whole to the next page.
// A box taller than an empty page is placed anyway and overflows.
func (p *Paginator) Paginate(boxes []*layout.Box) ([]*Page, error) {
	if p.ContentHeight() <= 0 || p.ContentWidth() <= 0 {
		return nil, fmt.Errorf("pagination: margins leave no content area on %s page", p.PageSize.Name)
	}

	c := &cursor{p: p, bottom: p.PageSize.Height - p.Margins.Bottom}
	if err := c.newPage(); err != nil {
		return nil, err
	}

	for i, box := range boxes {
		if box.Block.Kind == layout.KindSpacer {
			if !c.atTop() {
				c.y = math.Min(c.y+box.Height, c.bottom)
			}
			continue
		}

		if keepsWithNext(box) && i+1 < len(boxes) && !c.atTop() {
			if !c.fits(extent(box, 0, len(box.Lines), false) + leadIn(boxes[i+1])) {
				if err := c.newPage(); err != nil {
					return nil, err
				}
			}
		}

		if err := p.placeBox(c, box); err != nil {
			return nil, err
		}
	}
	return c.pages, nil
}

func (p *Paginator) placeBox(c *cursor, box *layout.Box) error {
	n := len(box.Lines)
	first := 0
	for {
		if c.fits(extent(box, first, n, c.atTop())) {
			c.place(box, first, n)
			return nil
		}

		if !box.Splittable() {
			if c.atTop() {
				c.place(box, first, n)
				return nil
			}
			if err := c.newPage(); err != nil {
				return err
			}
			continue
		}

		avail := c.bottom - c.y
		if first == 0 && !c.atTop() {
			avail -= box.Style.SpaceBefore
		}
		k := int(math.Floor((avail + epsilon) / box.Style.LineHeight))
		rest := n - first
		if k > rest-1 {
			k = rest - 1
		}
		if rest-k < p.minLines() {
			k = rest - p.minLines()
		}
		if k < p.minLines() && !c.atTop() {
			if err := c.newPage(); err != nil {
				return err
			}
			continue
		}
		if k < 1 {
			k = 1
		}
		c.place(box, first, first+k)
		first += k
		if first >= n {
			return nil
		}
		if err := c.newPage(); err != nil {
			return err
		}
	}
}

func (p *Paginator) minLines() int {
	if p.MinLines > 0 {
		return p.MinLines
	}
	return 2
}

// extent is the vertical space lines [first, last) of box take up.
func extent(box *layout.Box, first, last int, atTop bool) float64 {
	h := box.LinesHeight(first, last)
	if first == 0 && !atTop {
		h += box.Style.SpaceBefore
	}
	if last == len(box.Lines) {
		h += box.Style.SpaceAfter
	}
	if len(box.Lines) == 0 && box.Block.Kind != layout.KindSpacer {
		h = box.Height
		if atTop {
			h -= box.Style.SpaceBefore
		}
	}
	return h
}

// leadIn is the space needed to start box below a heading.
func leadIn(box *layout.Box) float64 {
	if len(box.Lines) == 0 {
		return box.Height
	}
	return box.Style.SpaceBefore + box.Style.LineHeight
}

func keepsWithNext(box *layout.Box) bool {
	switch box.Block.Kind {
	case layout.KindSection, layout.KindTitle:
		return true
	}
	return false
}
