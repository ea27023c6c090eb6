// Records list command queries matching records as a table.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-materials/kiln/pkg/types"
)

var (
	listStyles  []string
	listNames   []string
	listFilters []string
	listFull    bool
	listFlat    bool
)

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List matching records",
	Long: `List queries matching records and displays their tabular projection.

Example:
  kiln records list --database main
  kiln records list --database main --style relaxed-crystal
  kiln records list --database main --filter composition=Ni --filter composition=Al
  kiln records list --host ./library --style reference --json`,
	RunE: runRecordsList,
}

func init() {
	recordsListCmd.Flags().StringArrayVar(&listStyles, "style", nil, "record style to search (repeatable; default: all recognized styles)")
	recordsListCmd.Flags().StringArrayVar(&listNames, "name", nil, "record name to probe for (repeatable; default: every record)")
	recordsListCmd.Flags().StringArrayVar(&listFilters, "filter", nil, "field=value filter (repeatable; repeated keys widen the accepted set)")
	recordsListCmd.Flags().BoolVar(&listFull, "full", false, "include all fields instead of the summary subset")
	recordsListCmd.Flags().BoolVar(&listFlat, "flat", true, "collapse nested fields to single-level keys")
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	filters, err := parseFilters(listFilters)
	if err != nil {
		return err
	}
	q := types.Query{Names: listNames, Styles: listStyles, Filters: filters}

	table, err := db.GetRecordsTable(q, listFull, listFlat)
	if err != nil {
		return fmt.Errorf("get records: %w", err)
	}

	if flagJSON {
		rows := make([]map[string]any, table.Len())
		for i := range rows {
			rows[i] = table.Row(i)
		}
		output, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal records: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	printRecordsTable(table)
	return nil
}

// printRecordsTable prints the result table in a human-readable format.
func printRecordsTable(table *types.Table) {
	if table.Len() == 0 {
		fmt.Println("No records found.")
		return
	}

	columns := table.Columns()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.ToUpper(strings.Join(columns, "\t")))
	for i := 0; i < table.Len(); i++ {
		cells := make([]string, len(columns))
		for j, col := range columns {
			if v, ok := table.Value(i, col); ok {
				cells[j] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d record(s)\n", table.Len())
}
