package main

import (
	"fmt"
	"os"

	"github.com/ristex/ristex/internal/bbl"
	"github.com/spf13/cobra"
)

var htmlCitekeys bool

func init() {
	htmlCmd.Flags().BoolVar(&htmlCitekeys, "citekeys", false, "Anchor list items by citation key and renumber in-document links")
	rootCmd.AddCommand(htmlCmd)
}

var htmlCmd = &cobra.Command{
	Use:   "html <input.bbl> <output.html>",
	Short: "Rewrite a BibTeX .bbl file as an HTML reference list",
	Long: `Rewrite a BibTeX .bbl file as a standalone HTML reference list.

BibTeX style macros are resolved, LaTeX accents and dashes become HTML
entities. With --citekeys each list item carries an anchor id, and a
small script renumbers hyperlinked citations and drops uncited entries,
which keeps cross references of an HTML-converted manuscript working.

Examples:
  ristex html paper.bbl refs.html
  ristex html --citekeys paper.bbl refs.html`,
	Args: cobra.ExactArgs(2),
	RunE: runHTML,
}

func runHTML(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	items := bbl.HTMLItems(string(data))
	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "no bibliography items found in %s\n", input)
		os.Exit(ExitDataError)
	}
	debugf("%d bibliography items", len(items))

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer file.Close()

	return bbl.WriteHTML(file, items, htmlCitekeys)
}
