// Package templates provides the document template catalog and the
// processor that resolves a template against a variable bag.
package templates

import (
	"github.com/gompdf/leasedoc/internal/parser/mustache"
)

// Type classifies a template by the document it produces.
type Type string

const (
	TypeLease       Type = "lease"
	TypeApplication Type = "application"
	TypeInspection  Type = "inspection"
	TypeMaintenance Type = "maintenance"
	TypeTermination Type = "termination"
)

func (t Type) valid() bool {
	switch t {
	case TypeLease, TypeApplication, TypeInspection, TypeMaintenance, TypeTermination:
		return true
	}
	return false
}

// VarType is the declared type of a template variable.
type VarType string

const (
	VarText     VarType = "text"
	VarNumber   VarType = "number"
	VarDate     VarType = "date"
	VarBoolean  VarType = "boolean"
	VarCurrency VarType = "currency"
)

func (t VarType) valid() bool {
	switch t {
	case VarText, VarNumber, VarDate, VarBoolean, VarCurrency:
		return true
	}
	return false
}

// Template is a named document blueprint.
type Template struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Type        Type           `yaml:"type"`
	Description string         `yaml:"description,omitempty"`
	Content     string         `yaml:"content"`
	Variables   []VariableSpec `yaml:"variables,omitempty"`
	Source      string         `yaml:"-"` // file path or "builtin"

	compiled *mustache.Template
}

// VariableSpec describes a variable used in a template.
type VariableSpec struct {
	Name        string  `yaml:"name"`
	Type        VarType `yaml:"type"`
	Required    bool    `yaml:"required"`
	Description string  `yaml:"description,omitempty"`
	Default     *string `yaml:"default,omitempty"`
}

// Variable returns the spec for name, if declared.
func (t *Template) Variable(name string) (VariableSpec, bool) {
	for _, v := range t.Variables {
		if v.Name == name {
			return v, true
		}
	}
	return VariableSpec{}, false
}
