package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce converts loosely typed input into a variable bag, using the
// template's declarations to interpret strings: "1500" becomes a number for
// a number variable and "true" a boolean for a boolean one. Undeclared
// names convert as in VariablesFromMap.
func (t *Template) Coerce(in map[string]any) (Variables, error) {
	out := make(Variables, len(in))
	for name, raw := range in {
		if raw == nil {
			continue
		}
		spec, declared := t.Variable(name)
		var (
			v   Value
			err error
		)
		if declared {
			v, err = coerce(spec.Type, raw)
		} else {
			v, err = valueOf(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("templates: variable %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func coerce(t VarType, raw any) (Value, error) {
	v, err := valueOf(raw)
	if err != nil {
		return Value{}, err
	}

	switch t {
	case VarText:
		return Text(v.String()), nil
	case VarDate:
		if v.Kind() == KindText {
			return Date(strings.TrimSpace(v.String())), nil
		}
	case VarNumber:
		if v.Kind() == KindText {
			f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
			if err != nil {
				return Value{}, fmt.Errorf("expected number, got %q", v.String())
			}
			return Number(f), nil
		}
	case VarBoolean:
		if v.Kind() == KindText {
			b, err := strconv.ParseBool(strings.TrimSpace(v.String()))
			if err != nil {
				return Value{}, fmt.Errorf("expected boolean, got %q", v.String())
			}
			return Bool(b), nil
		}
	case VarCurrency:
		switch v.Kind() {
		case KindText:
			s := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(v.String()))
			d, err := decimal.NewFromString(s)
			if err != nil {
				return Value{}, fmt.Errorf("expected currency, got %q", v.String())
			}
			return Currency(d), nil
		case KindNumber:
			return Currency(decimal.NewFromFloat(v.num)), nil
		}
	}
	return v, nil
}
