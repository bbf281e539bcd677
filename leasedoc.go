// Package leasedoc generates rental documents: lease contracts, inspection
// checklists and template-driven letters, as PDF or HTML.
package leasedoc

import (
	"github.com/gompdf/leasedoc/internal/documents"
	"github.com/gompdf/leasedoc/internal/pagination"
	"github.com/gompdf/leasedoc/internal/render/pdf"
	"github.com/gompdf/leasedoc/internal/templates"
	"github.com/gompdf/leasedoc/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type RenderError = api.RenderError
type Document = api.Document
type ContractData = api.ContractData
type Template = api.Template
type Variables = api.Variables
type Value = api.Value
type TextStyle = api.TextStyle
type ValidationError = templates.ValidationError
type FieldError = templates.FieldError

func New(opts ...Option) *Generator             { return api.New(opts...) }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

func VariablesFromMap(in map[string]any) (Variables, error) {
	return templates.VariablesFromMap(in)
}

var (
	Text     = templates.Text
	Number   = templates.Number
	Date     = templates.Date
	Bool     = templates.Bool
	Currency = templates.Currency
)

var (
	WithPageSize       = api.WithPageSize
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
	WithMargins        = api.WithMargins
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
	WithStrict         = api.WithStrict
	WithMaxPages       = api.WithMaxPages
	WithCompression    = api.WithCompression
	WithFontFamily     = api.WithFontFamily
	WithStyle          = api.WithStyle
	WithTemplatePath   = api.WithTemplatePath
	WithLogo           = api.WithLogo
	WithDebug          = api.WithDebug
	WithLogger         = api.WithLogger
	PageSizeByName     = api.PageSizeByName
)

var (
	ErrTemplateNotFound = templates.ErrTemplateNotFound
	ErrMissingField     = documents.ErrMissingField
	ErrInvalidField     = documents.ErrInvalidField
	ErrPageLimit        = pagination.ErrPageLimit
	ErrLogoFormat       = pdf.ErrLogoFormat
)

const (
	PageSizeA4Width      = api.PageSizeA4Width
	PageSizeA4Height     = api.PageSizeA4Height
	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
