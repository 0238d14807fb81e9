package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ristex/ristex/internal/bib"
	"github.com/ristex/ristex/internal/config"
	"github.com/ristex/ristex/internal/pdfmeta"
	"github.com/ristex/ristex/internal/protect"
	"github.com/ristex/ristex/internal/ris"
	"github.com/ristex/ristex/internal/store"
	"github.com/spf13/cobra"
)

var (
	convertSub       string
	convertSuper     string
	convertColcap    bool
	convertNoDash    bool
	convertShortYear bool
	convertSkipA     bool
	convertArXiv     bool
	convertNature    bool
	convertSciPost   bool
	convertEtAl      int
	convertMerge     bool
	convertStore     bool
	convertPDFDir    string
)

func init() {
	f := convertCmd.Flags()
	f.StringVar(&convertSub, "sub", "", `Subscript markup with placeholder X (default \textsubscript{X})`)
	f.StringVar(&convertSuper, "super", "", `Superscript markup with placeholder X (default \textsuperscript{X})`)
	f.BoolVar(&convertColcap, "colcap", true, "Capitalize the first word after a colon")
	f.BoolVar(&convertNoDash, "nodash", false, "Replace en dashes between words by hyphens")
	f.BoolVar(&convertShortYear, "short-year", false, "Use two-digit years in identifiers")
	f.BoolVar(&convertSkipA, "skip-a", false, `Omit the sublabel "a"`)
	f.BoolVar(&convertArXiv, "arxiv", true, "Include eprint identifiers of published articles")
	f.BoolVar(&convertNature, "nature", false, "Provide DOI and eprint via the url field")
	f.BoolVar(&convertSciPost, "scipost", false, `Full eprint URLs and "misc" instead of "unpublished"`)
	f.IntVar(&convertEtAl, "etal", 0, `Reduce longer author lists to the first author "and others"`)
	f.BoolVar(&convertMerge, "merge", false, "Append only entries missing from the output file")
	f.BoolVar(&convertStore, "store", false, "Record entries in the workspace store and skip known ones")
	f.StringVar(&convertPDFDir, "pdf-dir", "", "Directory of <identifier>.pdf files used to fill in missing DOIs")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <input.ris> <output.bib>",
	Short: "Convert a RIS bibliography to BibTeX",
	Long: `Convert a RIS bibliography to BibTeX.

Titles are brace-protected so that acronyms, chemical formulas and
famous names survive lowercasing bibliography styles; non-ASCII
characters become LaTeX escape sequences.

Examples:
  ristex convert refs.ris refs.bib
  ristex convert --sub='$_{X}$' --super='$^{X}$' refs.ris refs.bib
  ristex convert --etal=15 --merge refs.ris refs.bib`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	root, cfg, err := loadWorkspace()
	if err != nil {
		return err
	}

	opts := conversionOptions(cmd, cfg)
	if verbose {
		opts.Debugf = debugf
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	records := ris.Parse(string(data))
	entries := bib.Build(records, opts, newProtector(cfg))

	if convertPDFDir != "" {
		fillDOIs(entries, convertPDFDir)
	}

	if convertStore {
		entries, err = dedupeAgainstStore(entries, cfg.DBPath(root))
		if err != nil {
			return err
		}
	}

	if convertMerge {
		entries, err = dedupeAgainstFile(entries, output)
		if err != nil {
			return err
		}
		return appendEntries(output, entries)
	}

	return writeEntries(output, entries)
}

// loadWorkspace finds the enclosing workspace, if any, and loads its
// configuration. Outside a workspace the defaults apply and the working
// directory is the root.
func loadWorkspace() (string, *config.Config, error) {
	root := workspaceRoot()

	found, err := config.FindWorkspace(root)
	if err != nil {
		return root, &config.Config{}, nil
	}

	cfg, err := config.Load(found)
	if err != nil {
		return "", nil, err
	}
	return found, cfg, nil
}

// conversionOptions layers configuration file values and explicitly set
// flags over the defaults.
func conversionOptions(cmd *cobra.Command, cfg *config.Config) bib.Options {
	opts := bib.DefaultOptions()

	if cfg.Superscript != "" {
		opts.Superscript = cfg.Superscript
	}
	if cfg.Subscript != "" {
		opts.Subscript = cfg.Subscript
	}
	if cfg.Colcap != nil {
		opts.Colcap = *cfg.Colcap
	}
	if cfg.ArXiv != nil {
		opts.ArXiv = *cfg.ArXiv
	}
	opts.NoDash = opts.NoDash || cfg.NoDash
	opts.ShortYear = opts.ShortYear || cfg.ShortYear
	opts.SkipA = opts.SkipA || cfg.SkipA
	opts.Nature = opts.Nature || cfg.Nature
	opts.SciPost = opts.SciPost || cfg.SciPost
	if cfg.EtAl > 0 {
		opts.EtAl = cfg.EtAl
	}

	flags := cmd.Flags()
	if flags.Changed("super") {
		opts.Superscript = convertSuper
	}
	if flags.Changed("sub") {
		opts.Subscript = convertSub
	}
	if flags.Changed("colcap") {
		opts.Colcap = convertColcap
	}
	if flags.Changed("nodash") {
		opts.NoDash = convertNoDash
	}
	if flags.Changed("short-year") {
		opts.ShortYear = convertShortYear
	}
	if flags.Changed("skip-a") {
		opts.SkipA = convertSkipA
	}
	if flags.Changed("arxiv") {
		opts.ArXiv = convertArXiv
	}
	if flags.Changed("nature") {
		opts.Nature = convertNature
	}
	if flags.Changed("scipost") {
		opts.SciPost = convertSciPost
	}
	if flags.Changed("etal") {
		opts.EtAl = convertEtAl
	}

	return opts
}

// newProtector builds the title protector, extending the built-in rules
// with configured names and element symbols.
func newProtector(cfg *config.Config) *protect.Protector {
	rules := protect.DefaultRules()
	rules.AddNames(cfg.Names)
	rules.AddElements(cfg.Elements)

	p := protect.New(rules)
	if verbose {
		p.Debugf = debugf
	}
	return p
}

// fillDOIs extracts DOIs from <identifier>.pdf files for entries that lack
// one. Extraction failures are diagnostics, not errors.
func fillDOIs(entries []bib.Entry, dir string) {
	for _, e := range entries {
		if e.Fields["DO"] != "" {
			continue
		}

		path := filepath.Join(dir, e.ID+".pdf")
		if _, err := os.Stat(path); err != nil {
			continue
		}

		doi, err := pdfmeta.ExtractDOI(path)
		if err != nil {
			debugf("extracting DOI from %s: %v", path, err)
			continue
		}
		if doi != "" {
			e.Fields["DO"] = doi
			debugf("DOI from PDF: %s = %s", e.ID, doi)
		}
	}
}

// dedupeAgainstStore drops entries already recorded in the store and
// records the remaining ones.
func dedupeAgainstStore(entries []bib.Entry, dbPath string) ([]bib.Entry, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var fresh []bib.Entry
	for _, e := range entries {
		known, err := db.Has(e)
		if err != nil {
			return nil, err
		}
		if known {
			debugf("already stored: %s", e.ID)
			continue
		}
		if err := db.Upsert(e); err != nil {
			return nil, err
		}
		fresh = append(fresh, e)
	}

	return fresh, nil
}

// dedupeAgainstFile drops entries already present in the output file.
func dedupeAgainstFile(entries []bib.Entry, path string) ([]bib.Entry, error) {
	idx, err := bib.ReadIndex(path)
	if err != nil {
		return nil, fmt.Errorf("indexing %s: %w", path, err)
	}

	var fresh []bib.Entry
	for _, e := range entries {
		if idx.Has(e) {
			debugf("already present: %s", e.ID)
			continue
		}
		idx.Add(e)
		fresh = append(fresh, e)
	}

	return fresh, nil
}

func writeEntries(path string, entries []bib.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	return bib.Write(file, entries)
}

func appendEntries(path string, entries []bib.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	return bib.Write(file, entries)
}
