package templates

import (
	"fmt"
	"sort"

	"github.com/gompdf/leasedoc/internal/parser/mustache"
)

// Registry is a read-only catalog of templates keyed by id. It is safe for
// concurrent use once constructed.
type Registry struct {
	byID map[string]*Template
	ids  []string
}

// NewRegistry builds a registry from tmpls. Each template is checked for a
// known type, unique well-typed variables, well-formed markup, and markup
// that only references declared variables.
func NewRegistry(tmpls ...*Template) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Template, len(tmpls))}
	for _, tmpl := range tmpls {
		if err := compile(tmpl); err != nil {
			return nil, err
		}
		if _, exists := r.byID[tmpl.ID]; exists {
			return nil, fmt.Errorf("templates: duplicate template id %q", tmpl.ID)
		}
		r.byID[tmpl.ID] = tmpl
		r.ids = append(r.ids, tmpl.ID)
	}
	sort.Strings(r.ids)
	return r, nil
}

// Get returns the template with the given id.
func (r *Registry) Get(id string) (*Template, error) {
	tmpl, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tmpl, nil
}

// List returns all templates sorted by id.
func (r *Registry) List() []*Template {
	out := make([]*Template, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of templates.
func (r *Registry) Len() int {
	return len(r.ids)
}

func compile(tmpl *Template) error {
	if tmpl == nil {
		return fmt.Errorf("templates: nil template")
	}
	if tmpl.ID == "" {
		return fmt.Errorf("templates: template %q has no id", tmpl.Name)
	}
	if !tmpl.Type.valid() {
		return fmt.Errorf("templates: template %q has unknown type %q", tmpl.ID, tmpl.Type)
	}

	seen := make(map[string]bool, len(tmpl.Variables))
	for _, v := range tmpl.Variables {
		if v.Name == "" {
			return fmt.Errorf("templates: template %q declares a variable without a name", tmpl.ID)
		}
		if seen[v.Name] {
			return fmt.Errorf("templates: template %q declares variable %q twice", tmpl.ID, v.Name)
		}
		seen[v.Name] = true
		if !v.Type.valid() {
			return fmt.Errorf("templates: template %q variable %q has unknown type %q", tmpl.ID, v.Name, v.Type)
		}
	}

	ast, err := mustache.Parse(tmpl.Content, mustache.ModeStrict)
	if err != nil {
		return fmt.Errorf("templates: parse %q: %w", tmpl.ID, err)
	}
	for _, name := range ast.References() {
		if !seen[name] {
			return fmt.Errorf("templates: template %q references undeclared variable %q", tmpl.ID, name)
		}
	}
	tmpl.compiled = ast
	return nil
}
