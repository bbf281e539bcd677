package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tmpl := adHoc("",
		VariableSpec{Name: "name", Type: VarText},
		VariableSpec{Name: "zip", Type: VarText},
		VariableSpec{Name: "day", Type: VarNumber},
		VariableSpec{Name: "pets", Type: VarBoolean},
		VariableSpec{Name: "rent", Type: VarCurrency},
		VariableSpec{Name: "fee", Type: VarCurrency},
		VariableSpec{Name: "start", Type: VarDate})

	vars, err := tmpl.Coerce(map[string]any{
		"name":  "Ann",
		"zip":   60601,
		"day":   "5",
		"pets":  "true",
		"rent":  "$1,500.00",
		"fee":   50,
		"start": " 2025-03-01",
		"extra": "free text",
		"gone":  nil,
	})
	require.NoError(t, err)

	assert.Equal(t, Text("60601"), vars["zip"])
	assert.Equal(t, Number(5), vars["day"])
	assert.Equal(t, Bool(true), vars["pets"])
	assert.Equal(t, KindCurrency, vars["rent"].Kind())
	assert.Equal(t, "1500", vars["rent"].String())
	assert.Equal(t, "50", vars["fee"].String())
	assert.Equal(t, Date("2025-03-01"), vars["start"])
	assert.Equal(t, Text("free text"), vars["extra"])
	assert.NotContains(t, vars, "gone")
	assert.NoError(t, Validate(tmpl, vars))
}

func TestCoerceErrors(t *testing.T) {
	tmpl := adHoc("",
		VariableSpec{Name: "day", Type: VarNumber},
		VariableSpec{Name: "pets", Type: VarBoolean},
		VariableSpec{Name: "rent", Type: VarCurrency})

	for name, raw := range map[string]any{"day": "fifth", "pets": "maybe", "rent": "lots"} {
		_, err := tmpl.Coerce(map[string]any{name: raw})
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), name)
	}
}
