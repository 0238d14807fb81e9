package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ristex/ristex/internal/bib"
	"github.com/ristex/ristex/internal/config"
	"github.com/ristex/ristex/internal/ris"
	"github.com/ristex/ristex/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	storeCmd.AddCommand(storeSyncCmd)
	storeCmd.AddCommand(storeListCmd)
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the workspace conversion store",
	Long: `Manage the workspace conversion store.

The store is a SQLite database of converted entries. It lets repeated
conversions with --store skip references that were already handled, and
it keeps a searchable record of everything the workspace has seen.`,
}

var storeSyncCmd = &cobra.Command{
	Use:   "sync <input.ris>",
	Short: "Record all entries of a RIS file in the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runStoreSync,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored entries",
	Args:  cobra.NoArgs,
	RunE:  runStoreList,
}

func runStoreSync(cmd *cobra.Command, args []string) error {
	input := args[0]

	root, cfg, err := requireWorkspace()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	records := ris.Parse(string(data))
	entries := bib.Build(records, conversionOptions(cmd, cfg), newProtector(cfg))

	dbPath := cfg.DBPath(root)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, e := range entries {
		if err := db.Upsert(e); err != nil {
			return err
		}
		debugf("stored %s", e.ID)
	}

	fmt.Printf("Recorded %d entries\n", len(entries))
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	root, cfg, err := requireWorkspace()
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.DBPath(root))
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := db.List()
	if err != nil {
		return err
	}

	for _, e := range entries {
		line := e.ID
		if title := e.Fields["TI"]; title != "" {
			line += "  " + title
		}
		fmt.Println(line)
	}

	debugf("%d entries", len(entries))
	return nil
}

// requireWorkspace is like loadWorkspace but fails when no workspace
// encloses the working directory. Store commands need a place for the
// database.
func requireWorkspace() (string, *config.Config, error) {
	root, err := config.FindWorkspace(workspaceRoot())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(ExitConfigError)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return "", nil, err
	}
	return root, cfg, nil
}
