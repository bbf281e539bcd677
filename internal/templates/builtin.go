package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	builtinOnce     sync.Once
	builtinRegistry *Registry
	builtinErr      error
)

// Builtin returns the registry of templates bundled with leasedoc. It is
// built once per process.
func Builtin() (*Registry, error) {
	builtinOnce.Do(func() {
		tmpls, err := LoadBuiltinTemplates()
		if err != nil {
			builtinErr = err
			return
		}
		builtinRegistry, builtinErr = NewRegistry(tmpls...)
	})
	return builtinRegistry, builtinErr
}

// LoadBuiltinTemplates parses the bundled template files. Each call returns
// fresh copies.
func LoadBuiltinTemplates() ([]*Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}

	tmpls := make([]*Template, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin template %s: %w", entry.Name(), err)
		}
		tmpl, err := parseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin template %s: %w", entry.Name(), err)
		}
		tmpl.Source = "builtin"
		tmpls = append(tmpls, tmpl)
	}

	sort.Slice(tmpls, func(i, j int) bool {
		return tmpls[i].ID < tmpls[j].ID
	})
	return tmpls, nil
}

func parseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}
	if tmpl.ID == "" {
		return nil, fmt.Errorf("template id is required")
	}
	return &tmpl, nil
}
