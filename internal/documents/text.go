package documents

import (
	"strings"
	"unicode"

	"github.com/gompdf/leasedoc/internal/layout"
)

const maxHeadingLen = 80

// FromText converts resolved template text into blocks. Blank lines end
// paragraphs, a line in capitals becomes a section heading and lines
// starting with "- " or "* " become bullets. A non-empty title is emitted
// as the document header, and a leading heading repeating it is dropped.
func FromText(title, body string) []layout.Block {
	b := &builder{}
	title = strings.TrimSpace(title)
	if title != "" {
		b.add(layout.Block{Kind: layout.KindHeader, Text: title})
	}

	var para []string
	flush := func() {
		if len(para) > 0 {
			b.paragraph(strings.Join(para, "\n"))
			para = nil
		}
	}

	body = strings.ReplaceAll(body, "\r\n", "\n")
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			flush()
		case isHeading(line):
			flush()
			if len(b.blocks) == 0 {
				b.add(layout.Block{Kind: layout.KindHeader, Text: line})
			} else if len(b.blocks) == 1 && strings.EqualFold(line, title) {
				continue
			} else {
				b.section(line)
			}
		case isBullet(line):
			flush()
			b.add(layout.Block{Kind: layout.KindBullet, Text: strings.TrimSpace(line[2:])})
		default:
			para = append(para, line)
		}
	}
	flush()
	return b.blocks
}

// isHeading reports whether line is written in capitals, such as
// "SECURITY DEPOSIT". Numbers and punctuation are allowed, but the line
// needs at least three letters and must not read as a sentence.
func isHeading(line string) bool {
	if len(line) > maxHeadingLen || strings.HasSuffix(line, ".") {
		return false
	}
	letters := 0
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	return letters >= 3
}

func isBullet(line string) bool {
	return len(line) > 2 && (strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "))
}
