// Package main provides the kiln CLI for browsing local calculation
// record stores and managing the named database and run-directory
// settings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
