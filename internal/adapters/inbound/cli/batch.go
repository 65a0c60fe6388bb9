package cli

import (
	"fmt"
	"time"

	"github.com/authentiq/authentiq/internal/adapters/outbound/config"
	"github.com/authentiq/authentiq/internal/adapters/outbound/source"
	"github.com/authentiq/authentiq/internal/adapters/outbound/store"
	"github.com/authentiq/authentiq/internal/adapters/outbound/tui"
	"github.com/authentiq/authentiq/internal/application"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var (
		inputPath  string
		configPath string
		storePath  string
		workers    int
		asOfRaw    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score a JSONL file of profile snapshots",
		Long:  "Score every profile in a JSON Lines file concurrently, print a summary, and optionally persist per-profile results to a SQLite database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := time.Now().UTC()
			if asOfRaw != "" {
				t, err := time.Parse(time.RFC3339, asOfRaw)
				if err != nil {
					return fmt.Errorf("parsing --as-of: %w", err)
				}
				asOf = t
			}

			src, err := source.OpenJSONL(inputPath)
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer src.Close()

			svc := application.NewScoreService(config.New())
			results, err := svc.ScoreBatch(cmd.Context(), src, application.BatchOptions{
				ConfigPath: configPath,
				Workers:    workers,
				AsOf:       asOf,
			})
			if err != nil {
				return fmt.Errorf("batch scoring failed: %w", err)
			}

			if storePath != "" {
				db, err := store.Open(storePath)
				if err != nil {
					return fmt.Errorf("opening store: %w", err)
				}
				defer db.Close()
				if err := db.Save(cmd.Context(), results); err != nil {
					return fmt.Errorf("saving results: %w", err)
				}
			}

			summary := application.Summarize(results)
			if jsonOutput {
				return renderJSON(cmd, summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "JSONL file of profile snapshots (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a scoring config file")
	cmd.Flags().StringVar(&storePath, "store", "", "SQLite database to persist per-profile results")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent scoring workers (default: number of CPUs)")
	cmd.Flags().StringVar(&asOfRaw, "as-of", "", "Snapshot time for records without one, RFC 3339 (defaults to now)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output summary as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
