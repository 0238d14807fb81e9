package main

import (
	"fmt"
	"os"

	"github.com/ristex/ristex/internal/bbl"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(texCmd)
}

var texCmd = &cobra.Command{
	Use:   "tex <input.bbl> <output.tex>",
	Short: "Rewrite a BibTeX .bbl file as a plain LaTeX reference list",
	Long: `Rewrite a BibTeX .bbl file as a standalone LaTeX document.

BibTeX style macros are resolved so the reference list compiles without
the original style file, one itemize entry per reference.`,
	Args: cobra.ExactArgs(2),
	RunE: runTeX,
}

func runTeX(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	items := bbl.TeXItems(string(data))
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

	return bbl.WriteTeX(file, items)
}
