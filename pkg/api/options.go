package api

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gompdf/leasedoc/internal/style"
)

// TextStyle customises how one kind of block is drawn.
type TextStyle = style.TextStyle

// Options represents configuration options for document generation.
// Dimensions are in millimetres.
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64

	// Page margins
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	// Strict validates variables against template declarations and
	// rejects malformed markup instead of printing it literally.
	Strict bool
	// MaxPages caps generated PDFs. Zero means unlimited.
	MaxPages int
	// Compress enables PDF stream compression.
	Compress bool

	// FontFamily is one of the PDF core fonts: Helvetica, Times or Courier.
	FontFamily string
	// StyleOverrides replaces parts of the default style of a block role,
	// keyed by role name such as "section" or "checklist-item".
	StyleOverrides map[string]TextStyle

	// TemplatePaths are searched for template files before the built-in
	// catalog, in order.
	TemplatePaths []string

	// LogoPath names an image drawn in the top margin of the first page.
	// PNG, JPEG, GIF, BMP, TIFF, WebP and SVG are accepted.
	LogoPath string

	Debug  bool
	Logger *zap.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// Standard page sizes in millimetres
const (
	PageSizeA4Width      = 210.0
	PageSizeA4Height     = 297.0
	PageSizeLetterWidth  = 215.9
	PageSizeLetterHeight = 279.4
	PageSizeLegalWidth   = 215.9
	PageSizeLegalHeight  = 355.6
)

// DefaultMargin is the default margin on every side, in millimetres.
const DefaultMargin = 20.0

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageWidth:    PageSizeA4Width,
		PageHeight:   PageSizeA4Height,
		MarginTop:    DefaultMargin,
		MarginRight:  DefaultMargin,
		MarginBottom: DefaultMargin,
		MarginLeft:   DefaultMargin,
		Creator:      "leasedoc",
		Compress:     true,
		FontFamily:   "Helvetica",
	}
}

// PageSizeByName looks up a named page size. Names are case-insensitive.
func PageSizeByName(name string) (width, height float64, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a4":
		return PageSizeA4Width, PageSizeA4Height, true
	case "letter":
		return PageSizeLetterWidth, PageSizeLetterHeight, true
	case "legal":
		return PageSizeLegalWidth, PageSizeLegalHeight, true
	}
	return 0, 0, false
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithStrict enables strict template validation
func WithStrict(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithMaxPages caps the number of pages a PDF may have
func WithMaxPages(n int) Option {
	return func(o *Options) {
		o.MaxPages = n
	}
}

// WithCompression toggles PDF stream compression
func WithCompression(compress bool) Option {
	return func(o *Options) {
		o.Compress = compress
	}
}

// WithFontFamily sets the core font used for all text
func WithFontFamily(family string) Option {
	return func(o *Options) {
		o.FontFamily = family
	}
}

// WithStyle overrides the style of one block role
func WithStyle(role string, st TextStyle) Option {
	return func(o *Options) {
		if o.StyleOverrides == nil {
			o.StyleOverrides = make(map[string]TextStyle)
		}
		o.StyleOverrides[role] = st
	}
}

// WithTemplatePath adds a directory to search for template files
func WithTemplatePath(path string) Option {
	return func(o *Options) {
		o.TemplatePaths = append(o.TemplatePaths, path)
	}
}

// WithLogo sets the letterhead logo image
func WithLogo(path string) Option {
	return func(o *Options) {
		o.LogoPath = path
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
