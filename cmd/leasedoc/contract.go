package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gompdf/leasedoc/internal/documents"
	"github.com/gompdf/leasedoc/internal/res"
)

var (
	contractData   string
	contractFormat string
	contractOutput string
)

func init() {
	rootCmd.AddCommand(contractCmd)
	contractCmd.Flags().StringVarP(&contractData, "data", "d", "", "YAML or JSON file with contract data (required)")
	contractCmd.Flags().StringVarP(&contractFormat, "format", "f", formatPDF, "output format: pdf or html")
	contractCmd.Flags().StringVarP(&contractOutput, "output", "o", "", "output file (default: stdout)")
	_ = contractCmd.MarkFlagRequired("data")
}

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Generate a residential lease contract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(contractFormat, formatPDF, formatHTML); err != nil {
			return err
		}
		resource, err := res.NewLoader("").Load(contractData)
		if err != nil {
			return fmt.Errorf("failed to open contract data: %w", err)
		}
		switch resource.Type {
		case res.ResourceTypeYAML, res.ResourceTypeJSON:
		default:
			return fmt.Errorf("contract data %s must be a YAML or JSON file", resource.Path)
		}

		data, err := documents.LoadContract(resource.GetReader())
		if err != nil {
			return err
		}

		if contractFormat == formatHTML {
			return writeHTML(contractOutput, func(w io.Writer) error {
				return generator.PreviewContractHTML(w, data)
			})
		}
		doc, err := generator.GenerateContractPDF(data)
		if err != nil {
			return err
		}
		return writePDF(doc, contractOutput)
	},
}
