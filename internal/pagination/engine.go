// Package pagination distributes measured layout boxes over fixed-size
// pages.
package pagination

import (
	"github.com/gompdf/leasedoc/internal/layout"
)

// Options represents options for the pagination engine. Dimensions are in
// millimetres.
type Options struct {
	PageWidth    float64
	PageHeight   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	MaxPages     int
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageWidth:    PageSizeA4.Width,
			PageHeight:   PageSizeA4.Height,
			MarginTop:    20,
			MarginRight:  20,
			MarginBottom: 20,
			MarginLeft:   20,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.options
}

// ContentWidth is the width available to the layout engine.
func (e *Engine) ContentWidth() float64 {
	return e.paginator().ContentWidth()
}

// Paginate breaks content into pages
func (e *Engine) Paginate(boxes []*layout.Box) ([]*Page, error) {
	return e.paginator().Paginate(boxes)
}

func (e *Engine) paginator() *Paginator {
	p := NewPaginator(
		PageSize{
			Width:  e.options.PageWidth,
			Height: e.options.PageHeight,
			Name:   "Custom",
		},
		Margins{
			Top:    e.options.MarginTop,
			Right:  e.options.MarginRight,
			Bottom: e.options.MarginBottom,
			Left:   e.options.MarginLeft,
		},
	)
	p.MaxPages = e.options.MaxPages
	return p
}
