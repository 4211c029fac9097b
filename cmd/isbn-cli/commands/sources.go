package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Prints the catalogs searched by lookup, in response order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newLookupService()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", "Source"})
		for i, name := range svc.Sources() {
			t.AppendRow(table.Row{i + 1, name})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
