// Records command group: querying and retrieving metadata records.
package main

import "github.com/spf13/cobra"

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Query and retrieve metadata records",
}

func init() {
	recordsCmd.AddCommand(recordsListCmd)
	recordsCmd.AddCommand(recordsGetCmd)
}
