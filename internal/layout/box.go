package layout

import (
	"fmt"

	"github.com/gompdf/leasedoc/internal/style"
)

// Kind identifies the role of a content block.
type Kind int

const (
	KindHeader Kind = iota
	KindTitle
	KindSection
	KindField
	KindParagraph
	KindBullet
	KindChecklistItem
	KindSignature
	KindSpacer
	KindRule
)

var kindRoles = map[Kind]string{
	KindHeader:        style.RoleHeader,
	KindTitle:         style.RoleTitle,
	KindSection:       style.RoleSection,
	KindField:         style.RoleField,
	KindParagraph:     style.RoleParagraph,
	KindBullet:        style.RoleBullet,
	KindChecklistItem: style.RoleChecklistItem,
	KindSignature:     style.RoleSignature,
	KindSpacer:        style.RoleSpacer,
	KindRule:          style.RoleRule,
}

// Role returns the stylesheet role for k.
func (k Kind) Role() string {
	return kindRoles[k]
}

func (k Kind) String() string {
	if role, ok := kindRoles[k]; ok {
		return role
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Block is one logical piece of document content, in reading order.
type Block struct {
	Kind Kind
	Text string
	// Label is the field name for KindField and the caption for KindSignature.
	Label string
	// Marker is the item number for KindChecklistItem and the bullet glyph
	// for KindBullet.
	Marker string
	// Height is the gap in millimetres for KindSpacer.
	Height float64
	// KeepTogether prevents the block from being split across pages.
	KeepTogether bool
}

// Box is a measured block: its wrapped lines and vertical extent.
type Box struct {
	Block Block
	Style style.TextStyle
	Lines []string
	// TextOffset is the horizontal offset of the wrapped lines from the
	// left margin. Field labels, markers and indents live in this gutter.
	TextOffset float64
	// LabelWidth is the width of the bold "Label: " run of a field.
	LabelWidth float64
	Height     float64
}

// LinesHeight returns the height of lines [first, last).
func (b *Box) LinesHeight(first, last int) float64 {
	return float64(last-first) * b.Style.LineHeight
}

// Splittable reports whether the box may be broken across pages.
func (b *Box) Splittable() bool {
	if b.Block.KeepTogether || len(b.Lines) < 2 {
		return false
	}
	switch b.Block.Kind {
	case KindParagraph, KindBullet, KindField:
		return true
	}
	return false
}
