package style

import "github.com/gompdf/leasedoc/internal/text"

// Roles recognised by the default stylesheet.
const (
	RoleHeader        = "header"
	RoleTitle         = "title"
	RoleSection       = "section"
	RoleField         = "field"
	RoleParagraph     = "paragraph"
	RoleBullet        = "bullet"
	RoleChecklistItem = "checklist-item"
	RoleSignature     = "signature"
	RoleSpacer        = "spacer"
	RoleRule          = "rule"
	RoleFooter        = "footer"
)

// Source records where a style came from.
type Source int

const (
	SourceDefault Source = iota
	SourceOverride
)

// TextStyle describes how one kind of block is set. Lengths are in
// millimetres, Size is in points.
type TextStyle struct {
	Family      string
	Style       string // "", "B", "I" or "BI"
	Size        float64
	LineHeight  float64
	SpaceBefore float64
	SpaceAfter  float64
	Indent      float64
	Align       string // "L" or "C"
	Source      Source
}

// Font returns the face used to measure and draw text in this style.
func (s TextStyle) Font() text.Font {
	return text.Font{Family: s.Family, Style: s.Style, Size: s.Size}
}

// Stylesheet maps block roles to text styles.
type Stylesheet struct {
	styles map[string]TextStyle
}

// Default returns the built-in stylesheet using the given font family.
// An empty family means Helvetica.
func Default(family string) *Stylesheet {
	if family == "" {
		family = "Helvetica"
	}
	base := TextStyle{Family: family, Size: 10, LineHeight: 5, Align: "L"}
	with := func(f func(*TextStyle)) TextStyle {
		s := base
		f(&s)
		return s
	}

	return &Stylesheet{styles: map[string]TextStyle{
		RoleHeader: with(func(s *TextStyle) {
			s.Style, s.Size, s.LineHeight, s.SpaceAfter, s.Align = "B", 16, 8, 4, "C"
		}),
		RoleTitle: with(func(s *TextStyle) {
			s.Style, s.Size, s.LineHeight, s.SpaceAfter, s.Align = "B", 13, 7, 4, "C"
		}),
		RoleSection: with(func(s *TextStyle) {
			s.Style, s.Size, s.LineHeight, s.SpaceBefore, s.SpaceAfter = "B", 12, 7, 4, 1
		}),
		RoleField: with(func(s *TextStyle) {
			s.LineHeight = 6
		}),
		RoleParagraph: with(func(s *TextStyle) {
			s.SpaceAfter = 2
		}),
		RoleBullet: with(func(s *TextStyle) {
			s.Indent, s.SpaceAfter = 5, 1
		}),
		RoleChecklistItem: with(func(s *TextStyle) {
			s.Size, s.LineHeight, s.Indent, s.SpaceAfter = 11, 6, 8, 2
		}),
		RoleSignature: with(func(s *TextStyle) {
			s.LineHeight, s.SpaceBefore, s.SpaceAfter = 5, 14, 4
		}),
		RoleSpacer: with(func(s *TextStyle) {
			s.LineHeight = 0
		}),
		RoleRule: with(func(s *TextStyle) {
			s.LineHeight, s.SpaceBefore, s.SpaceAfter = 0, 2, 3
		}),
		RoleFooter: with(func(s *TextStyle) {
			s.Style, s.Size, s.LineHeight = "I", 8, 4
		}),
	}}
}

// For returns the style for role. Unknown roles use the paragraph style.
func (s *Stylesheet) For(role string) TextStyle {
	if st, ok := s.styles[role]; ok {
		return st
	}
	return s.styles[RoleParagraph]
}

// Override merges the non-zero fields of partial into the style for role.
func (s *Stylesheet) Override(role string, partial TextStyle) {
	st := s.For(role)
	if partial.Family != "" {
		st.Family = partial.Family
	}
	if partial.Style != "" {
		st.Style = partial.Style
	}
	if partial.Size > 0 {
		st.Size = partial.Size
	}
	if partial.LineHeight > 0 {
		st.LineHeight = partial.LineHeight
	}
	if partial.SpaceBefore > 0 {
		st.SpaceBefore = partial.SpaceBefore
	}
	if partial.SpaceAfter > 0 {
		st.SpaceAfter = partial.SpaceAfter
	}
	if partial.Indent > 0 {
		st.Indent = partial.Indent
	}
	if partial.Align != "" {
		st.Align = partial.Align
	}
	st.Source = SourceOverride
	s.styles[role] = st
}
