package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"book_price_finder/internal/model"
	"book_price_finder/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var asJSON *bool

func init() {
	asJSON = lookupCmd.Flags().Bool("json", false, "Print the results as JSON instead of a table.")
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <isbn> [--json]",
	Short: "Searches every catalog for the given ISBN-10 or ISBN-13.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newLookupService()
		if err != nil {
			return err
		}

		ctx := utils.CreateCtxWithRqID(cmd.Context())
		results, err := svc.Lookup(ctx, args[0])
		if err != nil {
			return err
		}

		if *asJSON {
			return writeResultsJSON(cmd.OutOrStdout(), results)
		}
		writeResultsTable(cmd.OutOrStdout(), results)
		return nil
	},
}

func writeResultsJSON(w io.Writer, results []model.SourceResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

func writeResultsTable(w io.Writer, results []model.SourceResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Source", "Active", "Name", "Category", "Authors", "Publisher", "Price", "URL"})

	for _, r := range results {
		if r.Listing == nil {
			t.AppendRow(table.Row{r.Source, r.Active, "", "", "", "", "", ""})
			continue
		}
		t.AppendRow(table.Row{
			r.Source,
			r.Active,
			r.Name,
			optional(r.Category),
			r.Authors,
			optional(r.Publisher),
			fmt.Sprintf("%d %s", r.Price, r.Currency),
			r.URL,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
