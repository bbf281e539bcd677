// Package layout measures content blocks: it wraps their text to the
// content width and computes how much vertical space each one needs.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gompdf/leasedoc/internal/style"
	"github.com/gompdf/leasedoc/internal/text"
)

// ErrNoWidth is returned when the engine has no usable content width.
var ErrNoWidth = errors.New("layout: content width must be positive")

const (
	defaultWidth   = 170.0 // A4 width less 20mm margins, in mm
	checkboxSize   = 4.0
	markerGap      = 2.0
	signatureRule  = 80.0
	bulletGlyph    = "•"
	fieldSeparator = ": "
)

// Options configures the layout engine.
type Options struct {
	// Width is the content width in millimetres.
	Width float64
}

// Engine turns blocks into measured boxes.
type Engine struct {
	options  Options
	styles   *style.Stylesheet
	measurer text.Measurer
	logger   *zap.Logger
	Debug    bool
}

// NewEngine creates an engine with A4 defaults, the default stylesheet and
// core font metrics.
func NewEngine() *Engine {
	return &Engine{
		options:  Options{Width: defaultWidth},
		styles:   style.Default(""),
		measurer: FontMeasurer{},
		logger:   zap.NewNop(),
	}
}

// SetOptions sets the options for the layout engine.
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// SetStyles replaces the stylesheet.
func (e *Engine) SetStyles(styles *style.Stylesheet) {
	if styles != nil {
		e.styles = styles
	}
}

// SetMeasurer replaces the text measurer.
func (e *Engine) SetMeasurer(m text.Measurer) {
	if m != nil {
		e.measurer = m
	}
}

// SetLogger sets the logger used for debug output.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// Styles returns the engine's stylesheet.
func (e *Engine) Styles() *style.Stylesheet {
	return e.styles
}

// Layout measures blocks in order.
func (e *Engine) Layout(blocks []Block) ([]*Box, error) {
	if e.options.Width <= 0 {
		return nil, ErrNoWidth
	}

	boxes := make([]*Box, 0, len(blocks))
	for i, b := range blocks {
		box, err := e.layoutBlock(b)
		if err != nil {
			return nil, fmt.Errorf("layout: block %d: %w", i, err)
		}
		if e.Debug {
			e.logger.Debug("laid out block",
				zap.Int("index", i),
				zap.Stringer("kind", b.Kind),
				zap.Int("lines", len(box.Lines)),
				zap.Float64("height", box.Height))
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}

func (e *Engine) layoutBlock(b Block) (*Box, error) {
	role := b.Kind.Role()
	if role == "" {
		return nil, fmt.Errorf("unknown block kind %d", int(b.Kind))
	}
	st := e.styles.For(role)
	font := st.Font()
	width := e.options.Width
	box := &Box{Block: b, Style: st}

	switch b.Kind {
	case KindSpacer:
		box.Height = b.Height
		return box, nil

	case KindRule:
		box.Height = st.SpaceBefore + st.SpaceAfter
		return box, nil

	case KindField:
		bold := font
		bold.Style = "B"
		box.LabelWidth = e.measurer.Width(b.Label+fieldSeparator, bold)
		box.TextOffset = st.Indent + box.LabelWidth
		box.Lines = e.wrap(b.Text, width-box.TextOffset, font)

	case KindBullet:
		marker := b.Marker
		if marker == "" {
			marker = bulletGlyph
		}
		box.Block.Marker = marker
		box.TextOffset = st.Indent + e.measurer.Width(marker, font) + markerGap
		box.Lines = e.wrap(b.Text, width-box.TextOffset, font)

	case KindChecklistItem:
		offset := st.Indent
		if offset < checkboxSize+markerGap {
			offset = checkboxSize + markerGap
		}
		if b.Marker != "" {
			offset += e.measurer.Width(b.Marker, font) + markerGap
		}
		box.TextOffset = offset
		box.Lines = e.wrap(b.Text, width-box.TextOffset, font)

	case KindSignature:
		caption := b.Label
		if b.Text != "" {
			caption = strings.TrimSpace(caption + fieldSeparator + b.Text)
		}
		box.Lines = append(e.wrap(caption, signatureRule, font), "Date: ____________________")

	default:
		box.TextOffset = st.Indent
		box.Lines = e.wrap(b.Text, width-box.TextOffset, font)
	}

	box.Height = st.SpaceBefore + box.LinesHeight(0, len(box.Lines)) + st.SpaceAfter
	return box, nil
}

func (e *Engine) wrap(s string, width float64, font text.Font) []string {
	s = strings.TrimRight(text.Normalize(s), "\n ")
	return text.Wrap(s, width, font, e.measurer)
}
