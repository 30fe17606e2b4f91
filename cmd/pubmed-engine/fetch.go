package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-engine/internal/eutils"
	"github.com/pdiddy/pubmed-engine/internal/medline"
	"github.com/pdiddy/pubmed-engine/internal/store"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [pmids...]",
	Short: "Fetch citation XML from PubMed and decode it",
	Long: `Fetch retrieves citation records by PMID through the NCBI efetch endpoint,
decodes the XML into the record graph, and writes the records as YAML or
JSON. PMIDs come from the command line or from a query file written by
search --save.

With --store, decoded records are persisted into the citation store
instead of written to the output.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("query-file", "", "read PMIDs from a saved query file instead of arguments")
	fetchCmd.Flags().String("format", "yaml", "output format: yaml or json")
	fetchCmd.Flags().String("out", "", "output file (default stdout)")
	fetchCmd.Flags().Bool("store", false, "persist decoded records into the citation store")
	fetchCmd.Flags().String("db", "", "citation store path (default data/citations.db)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	pmids, err := fetchPMIDs(cmd, args)
	if err != nil {
		return err
	}
	if len(pmids) == 0 {
		return fmt.Errorf("provide one or more PMIDs, or --query-file")
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	client := eutils.NewClient(eutilsConfig(), log)
	docs, err := client.Fetch(context.Background(), pmids)
	if err != nil {
		return err
	}

	decoder := medline.NewDecoder(decodeMode(cmd), log)
	var records []types.Record
	for _, doc := range docs {
		recs, err := decoder.DecodeDocument(doc)
		if err != nil {
			return err
		}
		records = append(records, recs...)
	}

	if persist, _ := cmd.Flags().GetBool("store"); persist {
		return storeRecords(cmd, records)
	}
	return writeRecords(cmd, records)
}

// fetchPMIDs gathers identifiers from the argument list or a query file.
func fetchPMIDs(cmd *cobra.Command, args []string) ([]uint64, error) {
	queryFile, _ := cmd.Flags().GetString("query-file")
	if queryFile != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("provide PMIDs or --query-file, not both")
		}
		qf, err := eutils.ReadQueryFile(queryFile)
		if err != nil {
			return nil, err
		}
		return qf.PMIDs, nil
	}

	pmids := make([]uint64, 0, len(args))
	for _, arg := range args {
		pmid, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PMID %q", arg)
		}
		pmids = append(pmids, pmid)
	}
	return pmids, nil
}

// --- shared output helpers ---

// writeRecords serializes records per the --format and --out flags.
func writeRecords(cmd *cobra.Command, records []types.Record) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// storeRecords persists records into the citation store named by --db.
func storeRecords(cmd *cobra.Command, records []types.Record) error {
	s, err := store.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Put(context.Background(), records, os.Stdout)
	return err
}

// storeConfigFromFlags builds the store configuration from the --db
// flag, falling back to the store.path config key.
func storeConfigFromFlags(cmd *cobra.Command) types.StoreConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = storePathDefault()
	}
	return types.StoreConfig{Path: dbPath}
}
