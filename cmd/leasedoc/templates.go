package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.Flags().BoolVarP(&templatesVerbose, "verbose", "v", false, "show declared variables")
}

var templatesVerbose bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := generator.Templates()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNAME\tSOURCE")
		for _, tmpl := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tmpl.ID, tmpl.Type, tmpl.Name, tmpl.Source)
			if !templatesVerbose {
				continue
			}
			for _, v := range tmpl.Variables {
				req := ""
				if v.Required {
					req = " (required)"
				}
				def := ""
				if v.Default != nil {
					def = fmt.Sprintf(" [default %q]", *v.Default)
				}
				fmt.Fprintf(w, "  %s\t%s%s%s\t%s\t\n", v.Name, v.Type, req, def, v.Description)
			}
		}
		return w.Flush()
	},
}
