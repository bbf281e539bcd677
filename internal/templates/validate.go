package templates

import (
	"fmt"
	"time"

	"github.com/gompdf/leasedoc/internal/parser/mustache"
)

// Validate checks vars against the variable schema of tmpl. It reports
// type mismatches, missing required variables without a default, and
// references to undeclared variables.
func Validate(tmpl *Template, vars Variables) error {
	ast, err := mustache.Parse(tmpl.Content, mustache.ModeStrict)
	if err != nil {
		return fmt.Errorf("templates: parse %q: %w", tmpl.ID, err)
	}
	return validate(tmpl, ast, vars)
}

func validate(tmpl *Template, ast *mustache.Template, vars Variables) error {
	var fields []FieldError

	for _, spec := range tmpl.Variables {
		v, ok := vars[spec.Name]
		if !ok {
			if spec.Required && spec.Default == nil {
				fields = append(fields, FieldError{Name: spec.Name, Reason: "required"})
			}
			continue
		}
		if reason := checkType(spec.Type, v); reason != "" {
			fields = append(fields, FieldError{Name: spec.Name, Reason: reason})
		}
	}

	for _, name := range ast.References() {
		if _, ok := tmpl.Variable(name); !ok {
			fields = append(fields, FieldError{Name: name, Reason: "undeclared variable"})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Template: tmpl.ID, Fields: fields}
	}
	return nil
}

// checkType returns a reason when v cannot stand in for the declared type.
func checkType(t VarType, v Value) string {
	switch t {
	case VarText:
		if v.Kind() == KindText {
			return ""
		}
	case VarNumber:
		if v.Kind() == KindNumber {
			return ""
		}
	case VarBoolean:
		if v.Kind() == KindBool {
			return ""
		}
	case VarCurrency:
		if v.Kind() == KindCurrency || v.Kind() == KindNumber {
			return ""
		}
	case VarDate:
		switch v.Kind() {
		case KindDate:
			return ""
		case KindText:
			if _, err := time.Parse(time.DateOnly, v.String()); err == nil {
				return ""
			}
			return fmt.Sprintf("expected date (YYYY-MM-DD), got %q", v.String())
		}
	default:
		return fmt.Sprintf("unknown declared type %q", t)
	}
	return fmt.Sprintf("expected %s, got %s", t, v.Kind())
}
