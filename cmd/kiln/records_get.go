// Records get command retrieves exactly one record.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-materials/kiln/pkg/types"
)

var (
	getStyles  []string
	getNames   []string
	getFilters []string
)

var recordsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Retrieve a single record",
	Long: `Get retrieves exactly one matching record and prints its full
dictionary view as JSON. Zero matches and multiple matches are both
errors, so narrow the query with --name, --style, or --filter.

Example:
  kiln records get --database main --name 7b2a... --style relaxed-crystal`,
	RunE: runRecordsGet,
}

func init() {
	recordsGetCmd.Flags().StringArrayVar(&getStyles, "style", nil, "record style to search (repeatable)")
	recordsGetCmd.Flags().StringArrayVar(&getNames, "name", nil, "record name to probe for (repeatable)")
	recordsGetCmd.Flags().StringArrayVar(&getFilters, "filter", nil, "field=value filter (repeatable)")
}

func runRecordsGet(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	filters, err := parseFilters(getFilters)
	if err != nil {
		return err
	}

	rec, err := db.GetRecord(types.Query{Names: getNames, Styles: getStyles, Filters: filters})
	if err != nil {
		return fmt.Errorf("get record: %w", err)
	}

	dict, err := rec.ToDict(true, false)
	if err != nil {
		return fmt.Errorf("project record: %w", err)
	}
	output, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
