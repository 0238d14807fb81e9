// Package main provides the ristex CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// verbose enables conversion diagnostics on stderr
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ristex",
	Short: "Convert bibliographies between RIS, BibTeX, HTML and LaTeX",
	Long: `ristex converts bibliographic citation records between formats.

It reads RIS files as exported by reference managers and writes BibTeX
with automatic brace protection of acronyms, chemical formulas and
famous names in titles, and it rewrites BibTeX-generated .bbl files as
standalone HTML or LaTeX reference lists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// A .env file may provide RISTEX_ROOT and friends.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print conversion diagnostics to stderr")
	rootCmd.Version = Version
}

// workspaceRoot returns the directory where config and store lookup
// starts. RISTEX_ROOT overrides the working directory.
func workspaceRoot() string {
	if root := os.Getenv("RISTEX_ROOT"); root != "" {
		return root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// debugf prints a diagnostic line when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
