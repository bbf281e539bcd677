package templates

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindText Kind = iota + 1
	KindNumber
	KindDate
	KindBool
	KindCurrency
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBool:
		return "boolean"
	case KindCurrency:
		return "currency"
	}
	return "unknown"
}

// Value is a typed template variable value. The zero Value is not valid;
// use one of the constructors.
type Value struct {
	kind  Kind
	text  string
	num   float64
	flag  bool
	money decimal.Decimal
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Date returns a date value. The text is kept as given.
func Date(s string) Value { return Value{kind: KindDate, text: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Currency returns a monetary value.
func Currency(d decimal.Decimal) Value { return Value{kind: KindCurrency, money: d} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// String renders v the way it is substituted into a template.
func (v Value) String() string {
	switch v.kind {
	case KindText, KindDate:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindCurrency:
		return v.money.String()
	}
	return ""
}

// formatNumber prints whole and fractional numbers in plain notation.
// Magnitudes of 1e21 and above use an exponent, and infinities are spelled
// out.
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Truthy reports whether v selects the then-branch of a conditional.
// Empty text, zero, NaN and false are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindText, KindDate:
		return v.text != ""
	case KindNumber:
		return v.num != 0 && !math.IsNaN(v.num)
	case KindBool:
		return v.flag
	case KindCurrency:
		return !v.money.IsZero()
	}
	return false
}

// Variables is the variable bag supplied when processing a template.
type Variables map[string]Value

// VariablesFromMap converts loosely typed input (decoded YAML or JSON,
// flag values) into a variable bag. Nil entries are treated as absent.
func VariablesFromMap(in map[string]any) (Variables, error) {
	out := make(Variables, len(in))
	for name, raw := range in {
		if raw == nil {
			continue
		}
		v, err := valueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("templates: variable %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

func valueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case string:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float32:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	case decimal.Decimal:
		return Currency(v), nil
	case time.Time:
		return Date(v.Format(time.DateOnly)), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", raw)
}
