// Package api is the public entry point for generating rental documents:
// template processing, PDF generation and HTML previews.
package api

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gompdf/leasedoc/internal/documents"
	"github.com/gompdf/leasedoc/internal/layout"
	"github.com/gompdf/leasedoc/internal/pagination"
	htmlrender "github.com/gompdf/leasedoc/internal/render/html"
	"github.com/gompdf/leasedoc/internal/render/pdf"
	"github.com/gompdf/leasedoc/internal/res"
	"github.com/gompdf/leasedoc/internal/style"
	"github.com/gompdf/leasedoc/internal/templates"
)

type (
	Document     = pdf.Document
	ContractData = documents.ContractData
	Template     = templates.Template
	Variables    = templates.Variables
	Value        = templates.Value
)

// RenderError reports which generation step failed.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("leasedoc: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Generator is the main API for producing documents. It is safe for
// concurrent use; every call lays out and renders independently.
type Generator struct {
	options Options
	logger  *zap.Logger
	loader  *res.Loader

	registryOnce sync.Once
	registry     *templates.Registry
	registryErr  error
}

// New creates a generator with default options modified by opts
func New(opts ...Option) *Generator {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(options)
}

// NewWithOptions creates a generator with the specified options
func NewWithOptions(options Options) *Generator {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	// Bare resource names, such as a logo file, are also looked up in the
	// template directories.
	loader := res.NewLoader("")
	for _, p := range options.TemplatePaths {
		loader.AddSearchPath(p)
	}
	return &Generator{
		options: options,
		logger:  logger,
		loader:  loader,
	}
}

// Options returns the generator's options.
func (g *Generator) Options() Options {
	return g.options
}

func (g *Generator) templates() (*templates.Registry, error) {
	g.registryOnce.Do(func() {
		if len(g.options.TemplatePaths) == 0 {
			g.registry, g.registryErr = templates.Builtin()
			return
		}
		g.registry, g.registryErr = templates.LoadSearchPaths(g.loader, g.options.TemplatePaths...)
		if g.registryErr == nil {
			g.logger.Debug("loaded templates",
				zap.Strings("paths", g.loader.SearchPaths()),
				zap.Int("count", g.registry.Len()))
		}
	})
	if g.registryErr != nil {
		return nil, &RenderError{Op: "load templates", Err: g.registryErr}
	}
	return g.registry, nil
}

// Templates lists the available templates sorted by id.
func (g *Generator) Templates() ([]*Template, error) {
	reg, err := g.templates()
	if err != nil {
		return nil, err
	}
	return reg.List(), nil
}

// Template looks up a template by id. Unknown ids wrap
// templates.ErrTemplateNotFound.
func (g *Generator) Template(id string) (*Template, error) {
	reg, err := g.templates()
	if err != nil {
		return nil, err
	}
	return reg.Get(id)
}

// ProcessTemplate resolves tmpl against vars.
func (g *Generator) ProcessTemplate(tmpl *Template, vars Variables) (string, error) {
	return templates.Process(tmpl, vars,
		templates.WithStrict(g.options.Strict),
		templates.WithLogger(g.logger))
}

// ProcessTemplateByID resolves the template with the given id.
func (g *Generator) ProcessTemplateByID(id string, vars Variables) (string, error) {
	tmpl, err := g.Template(id)
	if err != nil {
		return "", err
	}
	return g.ProcessTemplate(tmpl, vars)
}

// GenerateContractPDF renders a lease contract. A missing DocumentID is
// filled with a random UUID.
func (g *Generator) GenerateContractPDF(data ContractData) (*Document, error) {
	blocks, err := documents.Contract(data)
	if err != nil {
		return nil, &RenderError{Op: "build contract", Err: err}
	}
	return g.renderPDF("Residential Lease Agreement", documentID(data.DocumentID), blocks)
}

// GenerateChecklistPDF renders a numbered checklist of kind, such as
// "move-in".
func (g *Generator) GenerateChecklistPDF(kind string, items []string) (*Document, error) {
	return g.renderPDF(documents.ChecklistTitle(kind), documentID(""), documents.Checklist(kind, items))
}

// GenerateTemplatePDF resolves a template and renders the result.
func (g *Generator) GenerateTemplatePDF(id string, vars Variables) (*Document, error) {
	tmpl, body, err := g.resolve(id, vars)
	if err != nil {
		return nil, err
	}
	return g.renderPDF(tmpl.Name, documentID(""), documents.FromText(tmpl.Name, body))
}

// PreviewContractHTML writes an HTML preview of a lease contract to w.
func (g *Generator) PreviewContractHTML(w io.Writer, data ContractData) error {
	blocks, err := documents.Contract(data)
	if err != nil {
		return &RenderError{Op: "build contract", Err: err}
	}
	return g.renderHTML(w, "Residential Lease Agreement", data.DocumentID, blocks)
}

// PreviewChecklistHTML writes an HTML preview of a checklist to w.
func (g *Generator) PreviewChecklistHTML(w io.Writer, kind string, items []string) error {
	return g.renderHTML(w, documents.ChecklistTitle(kind), "", documents.Checklist(kind, items))
}

// PreviewTemplateHTML writes an HTML preview of a resolved template to w.
func (g *Generator) PreviewTemplateHTML(w io.Writer, id string, vars Variables) error {
	tmpl, body, err := g.resolve(id, vars)
	if err != nil {
		return err
	}
	return g.renderHTML(w, tmpl.Name, "", documents.FromText(tmpl.Name, body))
}

func (g *Generator) resolve(id string, vars Variables) (*Template, string, error) {
	tmpl, err := g.Template(id)
	if err != nil {
		return nil, "", err
	}
	body, err := g.ProcessTemplate(tmpl, vars)
	if err != nil {
		return nil, "", &RenderError{Op: "process template", Err: err}
	}
	return tmpl, body, nil
}

func (g *Generator) stylesheet() *style.Stylesheet {
	sheet := style.Default(g.options.FontFamily)
	for role, st := range g.options.StyleOverrides {
		sheet.Override(role, st)
	}
	return sheet
}

func (g *Generator) renderPDF(title, id string, blocks []layout.Block) (*Document, error) {
	pager := pagination.NewEngine()
	pager.SetOptions(pagination.Options{
		PageWidth:    g.options.PageWidth,
		PageHeight:   g.options.PageHeight,
		MarginTop:    g.options.MarginTop,
		MarginRight:  g.options.MarginRight,
		MarginBottom: g.options.MarginBottom,
		MarginLeft:   g.options.MarginLeft,
		MaxPages:     g.options.MaxPages,
	})

	styles := g.stylesheet()
	layoutEngine := layout.NewEngine()
	layoutEngine.SetOptions(layout.Options{Width: pager.ContentWidth()})
	layoutEngine.SetStyles(styles)
	layoutEngine.SetLogger(g.logger)
	layoutEngine.Debug = g.options.Debug

	boxes, err := layoutEngine.Layout(blocks)
	if err != nil {
		return nil, &RenderError{Op: "layout", Err: err}
	}
	pages, err := pager.Paginate(boxes)
	if err != nil {
		return nil, &RenderError{Op: "paginate", Err: err}
	}

	logo, err := g.logo()
	if err != nil {
		return nil, &RenderError{Op: "load logo", Err: err}
	}

	renderer := pdf.NewRenderer()
	renderer.Styles = styles
	renderer.Compress = g.options.Compress
	renderer.Debug = g.options.Debug
	renderer.SetLogger(g.logger)

	if g.options.Title != "" {
		title = g.options.Title
	}
	doc, err := renderer.Render(pages, pdf.RenderOptions{
		Title:      title,
		Author:     g.options.Author,
		Subject:    g.options.Subject,
		Keywords:   g.options.Keywords,
		Creator:    g.options.Creator,
		Producer:   "leasedoc",
		DocumentID: id,
		Margins: pagination.Margins{
			Top:    g.options.MarginTop,
			Right:  g.options.MarginRight,
			Bottom: g.options.MarginBottom,
			Left:   g.options.MarginLeft,
		},
		Logo: logo,
	})
	if err != nil {
		return nil, &RenderError{Op: "render pdf", Err: err}
	}

	g.logger.Info("generated pdf",
		zap.String("document_id", id),
		zap.String("title", title),
		zap.Int("blocks", len(blocks)),
		zap.Int("pages", doc.PageCount()))
	return doc, nil
}

func (g *Generator) logo() (*pdf.Logo, error) {
	if g.options.LogoPath == "" {
		return nil, nil
	}
	resource, err := g.loader.Load(g.options.LogoPath)
	if err != nil {
		return nil, err
	}
	if resource.Type != res.ResourceTypeImage {
		return nil, fmt.Errorf("%s is not an image", resource.Path)
	}
	return pdf.DecodeLogo(resource.Data)
}

func (g *Generator) renderHTML(w io.Writer, title, id string, blocks []layout.Block) error {
	if g.options.Title != "" {
		title = g.options.Title
	}
	r := htmlrender.NewRenderer()
	r.Styles = g.stylesheet()
	if err := r.Render(w, blocks, htmlrender.Options{Title: title, DocumentID: id}); err != nil {
		return &RenderError{Op: "render html", Err: err}
	}
	return nil
}

func documentID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
