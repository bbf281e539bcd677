package templates

import (
	"fmt"

	"github.com/gompdf/leasedoc/internal/res"
)

// LoadDir parses every *.yaml / *.yml template in dir.
func LoadDir(loader *res.Loader, dir string) ([]*Template, error) {
	files, err := loader.List(dir, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}

	tmpls := make([]*Template, 0, len(files))
	for _, path := range files {
		resource, err := loader.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", path, err)
		}
		tmpl, err := parseTemplate(resource.Data)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", path, err)
		}
		tmpl.Source = path
		tmpls = append(tmpls, tmpl)
	}
	return tmpls, nil
}

// LoadSearchPaths builds a registry from the template directories in
// precedence order. The first template found for an id wins; built-in
// templates fill in any id not found on disk.
func LoadSearchPaths(loader *res.Loader, paths ...string) (*Registry, error) {
	seen := make(map[string]*Template)
	order := make([]string, 0)

	for _, path := range paths {
		tmpls, err := LoadDir(loader, path)
		if err != nil {
			return nil, err
		}
		for _, tmpl := range tmpls {
			if _, exists := seen[tmpl.ID]; exists {
				continue
			}
			seen[tmpl.ID] = tmpl
			order = append(order, tmpl.ID)
		}
	}

	builtins, err := LoadBuiltinTemplates()
	if err != nil {
		return nil, err
	}
	for _, tmpl := range builtins {
		if _, exists := seen[tmpl.ID]; exists {
			continue
		}
		seen[tmpl.ID] = tmpl
		order = append(order, tmpl.ID)
	}

	resolved := make([]*Template, 0, len(order))
	for _, id := range order {
		resolved = append(resolved, seen[id])
	}
	return NewRegistry(resolved...)
}
