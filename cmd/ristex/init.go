package main

import (
	"fmt"
	"os"

	"github.com/ristex/ristex/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a ristex workspace in the current directory",
	Long: `Create a ristex workspace in the current directory.

A workspace is a directory with a .ristex subdirectory holding the
configuration file and the conversion store. Commands run anywhere
below the workspace root pick up its configuration.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := workspaceRoot()

	if config.IsWorkspace(root) {
		fmt.Fprintf(os.Stderr, "%s is already a ristex workspace\n", root)
		os.Exit(ExitConfigError)
	}

	cfg := &config.Config{}
	if err := cfg.Save(root); err != nil {
		return err
	}

	fmt.Printf("Initialized ristex workspace in %s\n", config.Dir(root))
	return nil
}
