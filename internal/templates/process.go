package templates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gompdf/leasedoc/internal/parser/mustache"
	"go.uber.org/zap"
)

// ProcessOption configures a single Process call.
type ProcessOption func(*processConfig)

type processConfig struct {
	strict bool
	logger *zap.Logger
}

// WithStrict enables schema validation and strict markup parsing. Without
// it, malformed markup is copied to the output and missing values resolve
// to the empty string.
func WithStrict(strict bool) ProcessOption {
	return func(c *processConfig) {
		c.strict = strict
	}
}

// WithLogger sets the logger used to report unresolved placeholders.
func WithLogger(logger *zap.Logger) ProcessOption {
	return func(c *processConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Process resolves tmpl against vars.
//
// A placeholder takes the supplied value, else the declared default, else
// the empty string. A conditional is decided by the truthiness of the
// supplied value only; defaults never select a branch. Substituted values
// are emitted verbatim and are never interpreted as markup.
func Process(tmpl *Template, vars Variables, opts ...ProcessOption) (string, error) {
	if tmpl == nil {
		return "", errors.New("templates: template is required")
	}

	cfg := processConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ast := tmpl.compiled
	if ast == nil || cfg.strict {
		mode := mustache.ModeLenient
		if cfg.strict {
			mode = mustache.ModeStrict
		}
		parsed, err := mustache.Parse(tmpl.Content, mode)
		if err != nil {
			return "", fmt.Errorf("templates: parse %q: %w", tmpl.ID, err)
		}
		ast = parsed
	}

	if cfg.strict {
		if err := validate(tmpl, ast, vars); err != nil {
			return "", err
		}
	}

	p := &processor{tmpl: tmpl, vars: vars, logger: cfg.logger}
	var out strings.Builder
	p.render(&out, ast.Nodes)

	if len(p.unresolved) > 0 {
		cfg.logger.Debug("unresolved placeholders",
			zap.String("template", tmpl.ID),
			zap.Strings("names", p.unresolved))
	}
	return out.String(), nil
}

type processor struct {
	tmpl       *Template
	vars       Variables
	logger     *zap.Logger
	unresolved []string
}

func (p *processor) render(out *strings.Builder, nodes []mustache.Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *mustache.Literal:
			out.WriteString(v.Text)
		case *mustache.Placeholder:
			out.WriteString(p.resolve(v.Name))
		case *mustache.Conditional:
			if val, ok := p.vars[v.Name]; ok && val.Truthy() {
				p.render(out, v.Then)
			} else {
				p.render(out, v.Else)
			}
		}
	}
}

func (p *processor) resolve(name string) string {
	spec, declared := p.tmpl.Variable(name)
	if !declared {
		p.unresolved = append(p.unresolved, name)
		return ""
	}
	if v, ok := p.vars[name]; ok {
		return v.String()
	}
	if spec.Default != nil {
		return *spec.Default
	}
	p.unresolved = append(p.unresolved, name)
	return ""
}
