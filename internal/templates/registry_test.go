package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gompdf/leasedoc/internal/res"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	ids := make([]string, 0, reg.Len())
	types := make(map[Type]bool)
	for _, tmpl := range reg.List() {
		ids = append(ids, tmpl.ID)
		types[tmpl.Type] = true
		assert.Equal(t, "builtin", tmpl.Source)
	}
	assert.Equal(t, []string{
		"lease-termination",
		"maintenance-request",
		"move-in-inspection",
		"rental-application",
		"residential-lease",
	}, ids)
	assert.Len(t, types, 5)

	again, err := Builtin()
	require.NoError(t, err)
	assert.Same(t, reg, again)
}

func TestRegistryGetNotFound(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	_, err = reg.Get("commercial-lease")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestNewRegistryRejects(t *testing.T) {
	text := VariableSpec{Name: "a", Type: VarText}

	tests := []struct {
		name  string
		tmpls []*Template
		msg   string
	}{
		{
			name:  "duplicate id",
			tmpls: []*Template{adHoc("x"), adHoc("y")},
			msg:   "duplicate template id",
		},
		{
			name:  "unknown type",
			tmpls: []*Template{{ID: "t", Type: "sublet", Content: ""}},
			msg:   "unknown type",
		},
		{
			name:  "duplicate variable",
			tmpls: []*Template{adHoc("{{a}}", text, text)},
			msg:   "declares variable \"a\" twice",
		},
		{
			name:  "unknown variable type",
			tmpls: []*Template{adHoc("{{a}}", VariableSpec{Name: "a", Type: "money"})},
			msg:   "unknown type \"money\"",
		},
		{
			name:  "undeclared reference",
			tmpls: []*Template{adHoc("{{a}} {{#if b}}x{{/if}}", text)},
			msg:   "undeclared variable \"b\"",
		},
		{
			name:  "malformed markup",
			tmpls: []*Template{adHoc("{{#if a}}x", text)},
			msg:   "unclosed conditional",
		},
		{
			name:  "missing id",
			tmpls: []*Template{{Name: "nameless", Type: TypeLease}},
			msg:   "has no id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.tmpls...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadSearchPaths(t *testing.T) {
	project := t.TempDir()
	user := t.TempDir()

	override := `id: residential-lease
name: Custom Lease
type: lease
variables:
  - name: tenantName
    type: text
    required: true
content: |
  Lease for {{tenantName}}.
`
	extra := `id: parking-addendum
name: Parking Addendum
type: lease
variables:
  - name: space
    type: text
    default: "P1"
content: "Parking space {{space}}."
`
	shadowed := `id: parking-addendum
name: Shadowed
type: lease
content: "never used"
`
	require.NoError(t, os.WriteFile(filepath.Join(project, "lease.yaml"), []byte(override), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(project, "parking.yml"), []byte(extra), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(user, "parking.yaml"), []byte(shadowed), 0o644))

	reg, err := LoadSearchPaths(res.NewLoader(""), project, user, filepath.Join(user, "missing"))
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Len())

	lease, err := reg.Get("residential-lease")
	require.NoError(t, err)
	assert.Equal(t, "Custom Lease", lease.Name)
	assert.Equal(t, filepath.Join(project, "lease.yaml"), lease.Source)

	parking, err := reg.Get("parking-addendum")
	require.NoError(t, err)
	out, err := Process(parking, nil)
	require.NoError(t, err)
	assert.Equal(t, "Parking space P1.", out)

	inspection, err := reg.Get("move-in-inspection")
	require.NoError(t, err)
	assert.Equal(t, "builtin", inspection.Source)
}

func TestLoadDirInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: [unclosed"), 0o644))

	_, err := LoadDir(res.NewLoader(""), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
