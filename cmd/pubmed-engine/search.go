package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-engine/internal/eutils"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search PubMed and list matching PMIDs",
	Long: `Search runs an esearch query against the NCBI E-utilities API and prints
the matching PubMed identifiers. Terms use PubMed query syntax, e.g.
"blast[ti] AND 1990[pdat]".

Use --save to write the result to a query file that fetch --query-file
consumes later, so a search is paid for once.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max", 0, "maximum number of PMIDs to return (default from config, 20)")
	searchCmd.Flags().Int("start", 0, "result offset for paging")
	searchCmd.Flags().Bool("json", false, "output the result as JSON")
	searchCmd.Flags().String("save", "", "write the result to a query file for later fetch")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search term, e.g. pubmed-engine search \"blast[ti]\"")
	}
	term := strings.Join(args, " ")

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg := eutilsConfig()
	cfg.ApplyDefaults()
	retMax, _ := cmd.Flags().GetInt("max")
	if retMax <= 0 {
		retMax = cfg.RetMax
	}
	retStart, _ := cmd.Flags().GetInt("start")

	client := eutils.NewClient(cfg, log)
	result, err := client.Search(context.Background(), term, retStart, retMax)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := eutils.WriteQueryFile(savePath, term, retMax, result); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved query to %s\n", savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, pmid := range result.PMIDs {
		fmt.Println(pmid)
	}
	fmt.Fprintf(os.Stderr, "%d of %d matching records\n", len(result.PMIDs), result.Count)
	return nil
}
