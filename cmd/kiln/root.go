// Root command for the kiln CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-materials/kiln/internal/local"
	"github.com/mesh-materials/kiln/internal/paths"
	"github.com/mesh-materials/kiln/internal/settings"
	"github.com/mesh-materials/kiln/pkg/kiln"
	"github.com/mesh-materials/kiln/pkg/record"
	"github.com/mesh-materials/kiln/pkg/types"
)

// Global flag values.
var (
	flagSettingsDir string
	flagDatabase    string
	flagHost        string
	flagVerbose     bool
	flagJSON        bool
)

// logger is configured by PersistentPreRunE before any command runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "kiln",
	Short:   "Kiln browses local stores of calculation metadata records",
	Version: kiln.Version,
	Long: `Kiln manages local file-based stores of scientific calculation
metadata. Records are JSON files grouped into one directory per record
style, optionally paired with a tar.gz archive of binary artifacts.
Named databases and run directories are kept in a settings file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			logger = log
		}
		// Version needs no settings file.
		if cmd.Name() == "version" {
			return nil
		}
		return registerDeclaredStyles()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettingsDir, "settings-dir", "", "settings directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "named database from the settings registry")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "open a local store at this directory instead of a named database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(rundirCmd)
	rootCmd.AddCommand(stylesCmd)
}

// loadSettings opens the settings registry with a stdin-backed prompter.
func loadSettings() (*settings.Settings, error) {
	dir, err := paths.ResolveSettingsDir(flagSettingsDir)
	if err != nil {
		return nil, err
	}
	return settings.Load(dir, stdinPrompter())
}

// registerDeclaredStyles registers the record styles declared in the
// settings file as generic JSON styles.
func registerDeclaredStyles() error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	for _, style := range s.RecordStyles() {
		record.RegisterRaw(style)
	}
	return nil
}

// openDatabase opens the store selected by the persistent flags:
// --host opens a local store directly, --database opens a named entry
// from the settings registry.
func openDatabase() (types.Database, error) {
	if flagHost != "" {
		return local.New(flagHost, local.WithLogger(logger))
	}
	if flagDatabase != "" {
		s, err := loadSettings()
		if err != nil {
			return nil, err
		}
		return kiln.Open(s, flagDatabase)
	}
	return nil, errors.New("no database selected: give --database or --host")
}
