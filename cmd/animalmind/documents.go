// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/burrows3/AnimalMind/internal/store"
	"github.com/burrows3/AnimalMind/pkg/types"
)

var documentsCmd = &cobra.Command{
	Use:   "documents [query]",
	Short: "Query the document store with full-text search",
	Long: `Documents searches the local store using FTS5 full-text search over
document titles and snippets. Results include the source catalog and the
normalized entity lists.`,
	RunE: runDocuments,
}

func init() {
	documentsCmd.Flags().String("db", "", "SQLite document store path (default memory/animalmind.db)")
	documentsCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	documentsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(documentsCmd)
}

func runDocuments(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search query")
	}
	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	dbPath := stringSetting(cmd, "db", "store.path", defaultDBPath)
	st, err := store.Open(types.StoreConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer st.Close()

	docs, err := st.Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	if len(docs) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-28s  %-15s  %-10s  %s\n", "ID", "Source", "Type", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, doc := range docs {
		id := doc.ID
		if len(id) > 28 {
			id = id[:25] + "..."
		}
		title := doc.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-28s  %-15s  %-10s  %s\n", id, doc.Source, doc.DocType, title)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(docs))
	return nil
}
