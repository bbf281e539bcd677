// Package text measures and wraps document text for layout.
package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PointsToMM converts a font size in points to millimetres.
const PointsToMM = 25.4 / 72

// Font identifies a face for measuring.
type Font struct {
	Family string
	Style  string // "", "B", "I" or "BI"
	Size   float64
}

// Measurer reports the rendered width of a string in millimetres.
type Measurer interface {
	Width(s string, font Font) float64
}

// ApproxMeasurer estimates widths from a fixed per-character advance.
// It is good enough for layout decisions that do not need real font
// metrics.
type ApproxMeasurer struct {
	// Ratio is the character advance as a fraction of the font size.
	// Zero means 0.5.
	Ratio float64
}

// Width implements Measurer.
func (m ApproxMeasurer) Width(s string, font Font) float64 {
	ratio := m.Ratio
	if ratio == 0 {
		ratio = 0.5
	}
	charWidth := font.Size * ratio * PointsToMM
	return float64(utf8.RuneCountInString(s)) * charWidth
}

// Normalize composes decomposed characters (NFC) and unifies line endings.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	return norm.NFC.String(s)
}

// Wrap splits s into lines no wider than maxWidth. Explicit newlines are
// kept, and a word wider than a whole line is broken between characters.
func Wrap(s string, maxWidth float64, font Font, m Measurer) []string {
	if maxWidth <= 0 {
		return strings.Split(s, "\n")
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if m.Width(candidate, font) <= maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			if m.Width(word, font) <= maxWidth {
				current = word
				continue
			}
			pieces := breakWord(word, maxWidth, font, m)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
		}
		lines = append(lines, current)
	}
	return lines
}

// breakWord splits a word that cannot fit on one line. Every piece holds at
// least one character.
func breakWord(word string, maxWidth float64, font Font, m Measurer) []string {
	var pieces []string
	var b strings.Builder
	for _, r := range word {
		next := b.String() + string(r)
		if b.Len() > 0 && m.Width(next, font) > maxWidth {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	return append(pieces, b.String())
}
