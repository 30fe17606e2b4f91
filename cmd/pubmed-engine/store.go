// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-engine/internal/medline"
	"github.com/pdiddy/pubmed-engine/internal/store"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the citation store (put, get, query, export)",
	Long: `Store manages a local SQLite citation database with full-text search
over titles and abstracts. Use subcommands to persist decoded records,
look them up by PMID, query them, or export.`,
}

// --- put subcommand ---

var storePutCmd = &cobra.Command{
	Use:   "put <file.xml>...",
	Short: "Decode XML files and persist the records",
	Long: `Put decodes PubMed XML files and upserts every record into the citation
store, keyed by PMID. Records already present are updated in place.`,
	RunE: runStorePut,
}

func runStorePut(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more XML files")
	}

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	decoder := medline.NewDecoder(decodeMode(cmd), log)
	var records []types.Record
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		recs, err := decoder.DecodeDocument(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, recs...)
	}

	return storeRecords(cmd, records)
}

// --- get subcommand ---

var storeGetCmd = &cobra.Command{
	Use:   "get <pmid>",
	Short: "Print one stored record by PMID",
	RunE:  runStoreGet,
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one PMID")
	}
	pmid, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid PMID %q", args[0])
	}

	s, err := store.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Get(context.Background(), pmid)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("PMID %d not in store", pmid)
	}

	return writeRecords(cmd, []types.Record{*rec})
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search stored citations with full-text search and filters",
	Long: `Query searches the citation store using FTS5 full-text search over
titles and abstracts, structured filters (year, journal), or a
combination of both. Full-text results are ranked by relevance.`,
	RunE: runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := storeQueryOpts(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search text, --year, or --journal")
	}

	results, err := s.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-4s  %-30s  %s\n",
		"PMID", "Year", "Journal", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		journal := r.Journal
		if len(journal) > 30 {
			journal = journal[:27] + "..."
		}
		title := r.Title
		if len(title) > 52 {
			title = title[:49] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-10d  %-4d  %-30s  %s\n",
			r.PMID, r.Year, journal, title)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored citations to YAML, JSON, or CSL",
	Long: `Export writes the citation store (or a filtered subset) as YAML, JSON,
or a CSL-YAML bibliography consumable by Pandoc. Supports the same
filter flags as query for partial exports.`,
	RunE: runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	s, err := store.NewStore(storeConfigFromFlags(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	opts := storeQueryOpts(cmd, args)

	switch format {
	case "yaml", "":
		return s.ExportYAML(context.Background(), opts, w)
	case "json":
		return s.ExportJSON(context.Background(), opts, w)
	case "csl":
		return s.ExportCSL(context.Background(), opts, w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json, or csl", format)
	}
}

// --- shared helpers ---

// storePathDefault resolves the store path from config, falling back to
// the conventional location.
func storePathDefault() string {
	if p := viper.GetString("store.path"); p != "" {
		return p
	}
	return "data/citations.db"
}

func storeQueryOpts(cmd *cobra.Command, args []string) store.QueryOptions {
	text, _ := cmd.Flags().GetString("text")
	if text == "" && len(args) > 0 {
		text = strings.Join(args, " ")
	}

	year, _ := cmd.Flags().GetInt("year")
	journal, _ := cmd.Flags().GetString("journal")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Text:       text,
		Year:       year,
		Journal:    journal,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("db", "", "citation store path (default data/citations.db)")

	// Get flags.
	storeGetCmd.Flags().String("format", "yaml", "output format: yaml or json")
	storeGetCmd.Flags().String("out", "", "output file (default stdout)")

	// Query flags.
	storeQueryCmd.Flags().String("text", "", "full-text search over titles and abstracts")
	storeQueryCmd.Flags().Int("year", 0, "filter by publication year")
	storeQueryCmd.Flags().String("journal", "", "filter by journal title substring")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	storeExportCmd.Flags().String("format", "yaml", "export format: yaml, json, or csl")
	storeExportCmd.Flags().String("out", "", "output file (default stdout)")
	storeExportCmd.Flags().String("text", "", "full-text search filter for partial export")
	storeExportCmd.Flags().Int("year", 0, "filter by publication year")
	storeExportCmd.Flags().String("journal", "", "filter by journal title substring")
	storeExportCmd.Flags().Int("limit", 0, "maximum citations to export (0 = all)")

	// Wire subcommands.
	storeCmd.AddCommand(storePutCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeQueryCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
