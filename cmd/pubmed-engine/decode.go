package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-engine/internal/medline"
	"github.com/pdiddy/pubmed-engine/pkg/types"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file.xml>...",
	Short: "Decode local PubMed XML files into citation records",
	Long: `Decode reads PubMed/MEDLINE XML from local files, without touching the
network, and writes the decoded records as YAML or JSON. Every
PubmedArticle element found in each file becomes one record.

Lenient decoding (the default) skips unrecognized elements; --strict
fails on the first one, naming it.`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "yaml", "output format: yaml or json")
	decodeCmd.Flags().String("out", "", "output file (default stdout)")
	decodeCmd.Flags().Bool("store", false, "persist decoded records into the citation store")
	decodeCmd.Flags().String("db", "", "citation store path (default data/citations.db)")

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
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

	if persist, _ := cmd.Flags().GetBool("store"); persist {
		return storeRecords(cmd, records)
	}
	return writeRecords(cmd, records)
}
