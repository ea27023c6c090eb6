// Rundir command group: managing named run-directory settings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	rundirSetName string
	rundirSetPath string
)

var rundirCmd = &cobra.Command{
	Use:   "rundir",
	Short: "Manage named run directories in the settings registry",
}

var rundirListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the named run directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		names, err := s.ListRunDirectories()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No run directories currently set.")
			return nil
		}
		for _, name := range names {
			path, err := s.GetRunDirectory(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", name, path)
		}
		return nil
	},
}

var rundirSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Define or overwrite a named run directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return s.SetRunDirectory(rundirSetName, rundirSetPath)
	},
}

var rundirUnsetCmd = &cobra.Command{
	Use:   "unset [name]",
	Short: "Delete a named run directory from the settings registry",
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
		return s.UnsetRunDirectory(name)
	},
}

func init() {
	rundirSetCmd.Flags().StringVar(&rundirSetName, "name", "", "name for the run directory")
	rundirSetCmd.Flags().StringVar(&rundirSetPath, "path", "", "run directory path")

	rundirCmd.AddCommand(rundirListCmd)
	rundirCmd.AddCommand(rundirSetCmd)
	rundirCmd.AddCommand(rundirUnsetCmd)
}
