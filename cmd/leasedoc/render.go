package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	renderVars     []string
	renderVarsFile string
	renderFormat   string
	renderOutput   string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringArrayVar(&renderVars, "var", nil, "variable as name=value (repeatable)")
	renderCmd.Flags().StringVar(&renderVarsFile, "vars", "", "YAML or JSON file of variables")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", formatText, "output format: text, pdf or html")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
}

var renderCmd = &cobra.Command{
	Use:   "render <template-id>",
	Short: "Render a template with variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(renderFormat, formatText, formatPDF, formatHTML); err != nil {
			return err
		}
		tmpl, err := generator.Template(args[0])
		if err != nil {
			return err
		}
		raw, err := readVariables(renderVarsFile, renderVars)
		if err != nil {
			return err
		}
		vars, err := tmpl.Coerce(raw)
		if err != nil {
			return err
		}

		switch renderFormat {
		case formatPDF:
			doc, err := generator.GenerateTemplatePDF(tmpl.ID, vars)
			if err != nil {
				return err
			}
			return writePDF(doc, renderOutput)
		case formatHTML:
			return writeHTML(renderOutput, func(w io.Writer) error {
				return generator.PreviewTemplateHTML(w, tmpl.ID, vars)
			})
		}

		out, err := generator.ProcessTemplate(tmpl, vars)
		if err != nil {
			return err
		}
		w, err := openOutput(renderOutput)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	},
}

// readVariables merges a variables file with name=value pairs. Pairs win.
func readVariables(path string, pairs []string) (map[string]any, error) {
	raw := make(map[string]any)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read variables: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q, want name=value", pair)
		}
		raw[name] = value
	}
	return raw, nil
}
