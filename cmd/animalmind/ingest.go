// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/burrows3/AnimalMind/internal/connectors"
	"github.com/burrows3/AnimalMind/internal/fixtures"
	"github.com/burrows3/AnimalMind/internal/store"
	"github.com/burrows3/AnimalMind/pkg/types"
)

const defaultDBPath = "memory/animalmind.db"

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest documents into the local store",
	Long: `Ingest pulls normalized documents into the local SQLite store. By
default the bundled fixture set is ingested; with --live the PubMed and
ClinicalTrials.gov connectors are queried instead, falling back to
fixtures on any fetch error.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().Bool("live", false, "fetch documents from the live catalogs")
	ingestCmd.Flags().String("db", "", "SQLite document store path (default memory/animalmind.db)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	documents := fixtures.Documents()
	if live, _ := cmd.Flags().GetBool("live"); live {
		client := connectors.NewClient(types.ConnectorConfig{})
		vetDocs, err := client.FetchVetSignals(ctx)
		if err == nil {
			var trialDocs []types.Document
			trialDocs, err = client.FetchFailedTrials(ctx, failedTrialsTerm, failedTrialsStatus)
			if err == nil {
				documents = append(vetDocs, trialDocs...)
			}
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "live fetch failed, ingesting fixtures:", err)
		}
	}

	dbPath := stringSetting(cmd, "db", "store.path", defaultDBPath)
	st, err := store.Open(types.StoreConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := st.Upsert(ctx, documents)
	if err != nil {
		return err
	}

	total, err := st.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d document(s): %d new, %d updated (%d total in store)\n",
		summary.Total(), summary.Inserted, summary.Updated, total)
	return nil
}
