package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	sheet := Default("")
	header := sheet.For(RoleHeader)
	assert.Equal(t, "Helvetica", header.Family)
	assert.Equal(t, "B", header.Style)
	assert.Equal(t, "C", header.Align)
	assert.Equal(t, SourceDefault, header.Source)

	assert.Equal(t, sheet.For(RoleParagraph), sheet.For("unknown-role"))
	assert.Equal(t, "Times", Default("Times").For(RoleField).Family)
}

func TestOverride(t *testing.T) {
	sheet := Default("Helvetica")
	sheet.Override(RoleParagraph, TextStyle{Size: 11, LineHeight: 5.5})

	p := sheet.For(RoleParagraph)
	assert.Equal(t, 11.0, p.Size)
	assert.Equal(t, 5.5, p.LineHeight)
	assert.Equal(t, "Helvetica", p.Family)
	assert.Equal(t, 2.0, p.SpaceAfter)
	assert.Equal(t, SourceOverride, p.Source)

	// Other sheets are unaffected.
	assert.Equal(t, 10.0, Default("Helvetica").For(RoleParagraph).Size)
}

func TestFont(t *testing.T) {
	f := Default("Courier").For(RoleSection).Font()
	assert.Equal(t, "Courier", f.Family)
	assert.Equal(t, "B", f.Style)
	assert.Equal(t, 12.0, f.Size)
}
