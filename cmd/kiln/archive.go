// Archive command group: retrieving per-record tar archives.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	archiveName   string
	archiveStyle  string
	archiveOutput string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Retrieve per-record tar archives",
}

var archiveFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the archive associated with one record",
	Long: `Fetch resolves exactly one record and retrieves its tar.gz archive.
With --output the raw archive bytes are written to the given file;
without it the archive's entry listing is printed.

Example:
  kiln archive fetch --database main --name 7b2a... --style relaxed-crystal -o run.tar.gz`,
	RunE: runArchiveFetch,
}

func init() {
	archiveFetchCmd.Flags().StringVar(&archiveName, "name", "", "record name")
	archiveFetchCmd.Flags().StringVar(&archiveStyle, "style", "", "record style")
	archiveFetchCmd.Flags().StringVarP(&archiveOutput, "output", "o", "", "write raw archive bytes to this file")

	archiveCmd.AddCommand(archiveFetchCmd)
}

func runArchiveFetch(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}

	if archiveOutput != "" {
		data, err := db.GetArchiveBytes(nil, archiveName, archiveStyle)
		if err != nil {
			return fmt.Errorf("fetch archive: %w", err)
		}
		if err := os.WriteFile(archiveOutput, data, 0o644); err != nil {
			return fmt.Errorf("write archive: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), archiveOutput)
		return nil
	}

	ar, err := db.OpenArchive(nil, archiveName, archiveStyle)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer ar.Close()

	count := 0
	for {
		hdr, err := ar.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read archive entry: %w", err)
		}
		fmt.Printf("%s\t%d\n", hdr.Name, hdr.Size)
		count++
	}
	fmt.Printf("Total: %d entr(ies)\n", count)
	return nil
}
