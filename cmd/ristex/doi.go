package main

import (
	"fmt"
	"os"

	"github.com/ristex/ristex/internal/pdfmeta"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <article.pdf>",
	Short: "Extract the DOI from an article PDF",
	Long: `Extract the DOI from an article PDF.

The first pages are scanned for a DOI pattern, which journals print in
the header or footer of the first page. The DOI goes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	path := args[0]

	doi, err := pdfmeta.ExtractDOI(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if doi == "" {
		fmt.Fprintf(os.Stderr, "no DOI found in %s\n", path)
		os.Exit(ExitDataError)
	}

	fmt.Println(doi)
	return nil
}
