package documents

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gompdf/leasedoc/internal/layout"
)

// Checklist kinds with dedicated titles.
const (
	ChecklistMoveIn      = "move-in"
	ChecklistMoveOut     = "move-out"
	ChecklistMaintenance = "maintenance"
)

var titleCaser = cases.Title(language.English)

// ChecklistTitle derives a heading from a checklist kind. Move-in and
// move-out checklists are inspections.
func ChecklistTitle(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(kind, "_", " ")))
	if kind == "" {
		return "Checklist"
	}
	name := titleCaser.String(kind)
	switch kind {
	case ChecklistMoveIn, ChecklistMoveOut:
		return name + " Inspection Checklist"
	}
	return name + " Checklist"
}

// Checklist returns the blocks of a numbered checklist. Blank items are
// skipped and do not consume a number.
func Checklist(kind string, items []string) []layout.Block {
	b := &builder{}
	b.add(layout.Block{Kind: layout.KindTitle, Text: ChecklistTitle(kind)})
	b.field("Property", "________________________________________")
	b.field("Date", "____________________")
	b.add(layout.Block{Kind: layout.KindRule})

	n := 0
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n++
		b.add(layout.Block{
			Kind:         layout.KindChecklistItem,
			Marker:       strconv.Itoa(n) + ".",
			Text:         item,
			KeepTogether: true,
		})
	}
	if n == 0 {
		b.paragraph("No items.")
	}

	b.section("NOTES")
	b.paragraph(strings.Repeat("_", 80))
	b.signature("Inspector Signature", "")
	b.signature("Tenant Signature", "")
	return b.blocks
}
