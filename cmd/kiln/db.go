// Db command group: managing named database settings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-materials/kiln/internal/settings"
)

var (
	dbSetName   string
	dbSetStyle  string
	dbSetHost   string
	dbSetParams []string
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage named databases in the settings registry",
}

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		names, err := s.ListDatabases()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No databases currently set.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var dbSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Define or overwrite a named database",
	Long: `Set stores the access settings for a named database. Values not
given as flags are requested interactively.

Example:
  kiln db set --name main --style local --host ~/calc-library`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		params, err := parseParams(dbSetParams)
		if err != nil {
			return err
		}
		return s.SetDatabase(settings.Database{
			Name:   dbSetName,
			Style:  dbSetStyle,
			Host:   dbSetHost,
			Params: params,
		})
	},
}

var dbUnsetCmd = &cobra.Command{
	Use:   "unset [name]",
	Short: "Delete a named database from the settings registry",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return s.UnsetDatabase(name)
	},
}

func init() {
	dbSetCmd.Flags().StringVar(&dbSetName, "name", "", "name for the database")
	dbSetCmd.Flags().StringVar(&dbSetStyle, "style", "", "database style")
	dbSetCmd.Flags().StringVar(&dbSetHost, "host", "", "database host (directory path or URL)")
	dbSetCmd.Flags().StringArrayVar(&dbSetParams, "param", nil, "extra key=value access parameter (repeatable)")

	dbCmd.AddCommand(dbListCmd)
	dbCmd.AddCommand(dbSetCmd)
	dbCmd.AddCommand(dbUnsetCmd)
}
