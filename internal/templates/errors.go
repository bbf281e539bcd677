package templates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTemplateNotFound is returned when a template id is not in the registry.
var ErrTemplateNotFound = errors.New("templates: template not found")

// FieldError describes one offending variable.
type FieldError struct {
	Name   string
	Reason string
}

func (f FieldError) String() string {
	return f.Name + ": " + f.Reason
}

// ValidationError lists every variable that failed strict validation.
type ValidationError struct {
	Template string
	Fields   []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("templates: invalid variables for %q: %s", e.Template, strings.Join(parts, "; "))
}

// Field returns the error recorded for name, if any.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldError{}, false
}
