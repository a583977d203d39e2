// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/burrows3/AnimalMind/internal/connectors"
	"github.com/burrows3/AnimalMind/internal/evidence"
	"github.com/burrows3/AnimalMind/internal/fixtures"
	"github.com/burrows3/AnimalMind/internal/ids"
	"github.com/burrows3/AnimalMind/internal/pipeline"
	"github.com/burrows3/AnimalMind/internal/priorart"
	"github.com/burrows3/AnimalMind/internal/problems"
	"github.com/burrows3/AnimalMind/internal/publish"
	"github.com/burrows3/AnimalMind/internal/store"
	"github.com/burrows3/AnimalMind/pkg/types"
)

const (
	defaultWorkDir        = "memory/repurpose"
	defaultPublicDir      = "public/repurpose"
	defaultMirrorDir      = "docs/repurpose"
	defaultFixtureSignals = "fixtures/signals"
	failedTrialsTerm      = "drug terminated"
	failedTrialsStatus    = "TERMINATED"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one full repurpose pipeline run",
	Long: `Run executes the evidence-fusion pipeline: problem briefs are mapped to
candidate compounds, each candidate is analyzed for failure history,
species rationale, veterinary evidence, and risk, and the fused signals are
scored and published to every output sink along with a run index, a
last-run marker, and a run log.

A run either publishes a full, consistent output set or fails with no
signal output retained. Rerunning with the same --run-id fully replaces the
previous output.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("run-id", "", "run identifier (default: generated from the current time)")
	runCmd.Flags().Bool("use-fixtures", false, "publish the canned fixture signal set instead of analyzing")
	runCmd.Flags().Bool("fetch-live", false, "fetch input documents from PubMed and ClinicalTrials.gov, falling back to fixtures on error")
	runCmd.Flags().Bool("include-prior-art", false, "attach the prior-art assessment to each signal")
	runCmd.Flags().String("problems", "", "YAML file of problem briefs (default: built-in briefs)")
	runCmd.Flags().String("knowledge", "", "YAML knowledge tables (default: built-in tables)")
	runCmd.Flags().String("work-dir", "", "working-storage sink directory (default memory/repurpose)")
	runCmd.Flags().String("public-dir", "", "public-facing sink directory (default public/repurpose)")
	runCmd.Flags().String("mirror-dir", "", "mirror sink directory (default docs/repurpose)")
	runCmd.Flags().String("fixture-signals", "", "directory of canned signal JSON files (default fixtures/signals)")
	runCmd.Flags().String("db", "", "SQLite document store path; when set, fetched documents are also ingested")

	rootCmd.AddCommand(runCmd)
}

func publishConfigFromFlags(cmd *cobra.Command) types.PublishConfig {
	return types.PublishConfig{
		WorkDir:   stringSetting(cmd, "work-dir", "publish.work_dir", defaultWorkDir),
		PublicDir: stringSetting(cmd, "public-dir", "publish.public_dir", defaultPublicDir),
		MirrorDir: stringSetting(cmd, "mirror-dir", "publish.mirror_dir", defaultMirrorDir),
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startedAt := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")

	runID, _ := cmd.Flags().GetString("run-id")
	if runID == "" {
		runID = ids.RunID()
	}
	useFixtures, _ := cmd.Flags().GetBool("use-fixtures")
	fetchLive, _ := cmd.Flags().GetBool("fetch-live")
	includePriorArt, _ := cmd.Flags().GetBool("include-prior-art")

	pub, err := publish.New(publishConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	// Document set: fixtures unless a live fetch succeeds. A connector
	// failure is recovered locally and never fails the run.
	documents := fixtures.Documents()
	if fetchLive {
		if live, err := fetchLiveDocuments(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "live fetch failed, using fixtures: %v\n", err)
		} else {
			documents = live
		}
	}

	documentCount, err := pub.PublishDocuments(documents)
	if err != nil {
		return err
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		if err := ingestDocuments(ctx, dbPath, documents); err != nil {
			return err
		}
	}

	var signals []types.RepurposeSignal
	if useFixtures {
		dir := stringSetting(cmd, "fixture-signals", "fixtures.signals_dir", defaultFixtureSignals)
		signals, err = fixtures.Signals(dir)
		if err != nil {
			return err
		}
	} else {
		provider, err := knowledgeProvider(cmd)
		if err != nil {
			return err
		}
		briefs, err := problemBriefs(cmd)
		if err != nil {
			return err
		}

		var scout priorart.Scout = priorart.Noop{}
		if includePriorArt {
			scout = priorart.Stub{}
		}

		engine := pipeline.New(provider, scout)
		signals, err = engine.Run(ctx, briefs, runID, os.Stderr)
		if err != nil {
			return err
		}
	}

	outputs, err := pub.Publish(signals, runID)
	if err != nil {
		return err
	}

	logPath, err := pub.WriteRunLog(runID, publish.RunLog{
		RunID:           runID,
		StartedAt:       startedAt,
		UseFixtures:     useFixtures,
		FetchLive:       fetchLive,
		IncludePriorArt: includePriorArt,
		DocumentCount:   documentCount,
		SignalCount:     len(signals),
		Outputs:         outputs,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Repurpose run complete: %s\n", runID)
	fmt.Printf("Signals: %d\n", len(signals))
	fmt.Printf("Log: %s\n", logPath)
	return nil
}

// fetchLiveDocuments pulls veterinary literature and terminated-trial
// records from the live catalogs.
func fetchLiveDocuments(ctx context.Context) ([]types.Document, error) {
	client := connectors.NewClient(types.ConnectorConfig{})

	vetDocs, err := client.FetchVetSignals(ctx)
	if err != nil {
		return nil, err
	}
	trialDocs, err := client.FetchFailedTrials(ctx, failedTrialsTerm, failedTrialsStatus)
	if err != nil {
		return nil, err
	}
	return append(vetDocs, trialDocs...), nil
}

// ingestDocuments upserts the run's document set into the local store.
// The handle lives for the duration of the call only.
func ingestDocuments(ctx context.Context, dbPath string, documents []types.Document) error {
	st, err := store.Open(types.StoreConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := st.Upsert(ctx, documents)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "stored %d document(s) (%d new, %d updated)\n",
		summary.Total(), summary.Inserted, summary.Updated)
	return nil
}

func knowledgeProvider(cmd *cobra.Command) (evidence.Provider, error) {
	path, _ := cmd.Flags().GetString("knowledge")
	if path == "" {
		return evidence.NewStaticProvider(), nil
	}
	return evidence.LoadProvider(path)
}

func problemBriefs(cmd *cobra.Command) ([]types.ProblemBrief, error) {
	path, _ := cmd.Flags().GetString("problems")
	if path == "" {
		return problems.Default(), nil
	}
	return problems.Load(path)
}
