package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gompdf/leasedoc/internal/documents"
)

var (
	checklistKind      string
	checklistItems     []string
	checklistItemsFile string
	checklistFormat    string
	checklistOutput    string
)

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.Flags().StringVarP(&checklistKind, "kind", "k", documents.ChecklistMoveIn, "checklist kind, e.g. move-in, move-out, maintenance")
	checklistCmd.Flags().StringArrayVarP(&checklistItems, "item", "i", nil, "checklist item (repeatable)")
	checklistCmd.Flags().StringVar(&checklistItemsFile, "items", "", "file with one item per line")
	checklistCmd.Flags().StringVarP(&checklistFormat, "format", "f", formatPDF, "output format: pdf or html")
	checklistCmd.Flags().StringVarP(&checklistOutput, "output", "o", "", "output file (default: stdout)")
}

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Generate a numbered inspection checklist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(checklistFormat, formatPDF, formatHTML); err != nil {
			return err
		}
		items := append([]string(nil), checklistItems...)
		if checklistItemsFile != "" {
			fromFile, err := readLines(checklistItemsFile)
			if err != nil {
				return err
			}
			items = append(items, fromFile...)
		}

		if checklistFormat == formatHTML {
			return writeHTML(checklistOutput, func(w io.Writer) error {
				return generator.PreviewChecklistHTML(w, checklistKind, items)
			})
		}
		doc, err := generator.GenerateChecklistPDF(checklistKind, items)
		if err != nil {
			return err
		}
		return writePDF(doc, checklistOutput)
	},
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
