// Styles command group: record styles recognized by the store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the record styles declared in the settings file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		styles := s.RecordStyles()
		if len(styles) == 0 {
			fmt.Println("No record styles declared.")
			return nil
		}
		for _, style := range styles {
			fmt.Println(style)
		}
		return nil
	},
}

var stylesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Declare a record style",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return s.AddRecordStyle(args[0])
	},
}

var stylesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a record style declaration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return s.RemoveRecordStyle(args[0])
	},
}

func init() {
	stylesCmd.AddCommand(stylesAddCmd)
	stylesCmd.AddCommand(stylesRemoveCmd)
}
