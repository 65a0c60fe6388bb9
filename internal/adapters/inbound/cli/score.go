package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/authentiq/authentiq/internal/adapters/outbound/config"
	"github.com/authentiq/authentiq/internal/adapters/outbound/tui"
	"github.com/authentiq/authentiq/internal/application"
	"github.com/authentiq/authentiq/internal/domain"
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var (
		jsonOutput bool
		detailed   bool
		configPath string
		filePath   string
		createdAt  string
		observedAt string
		profile    domain.ProfileData
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a single profile snapshot",
		Long:  "Score a social profile's public statistics, given as flags or as a JSON file, and print its authenticity label and confidence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filePath != "" {
				data, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("reading profile: %w", err)
				}
				if err := json.Unmarshal(data, &profile); err != nil {
					return fmt.Errorf("parsing profile %s: %w", filePath, err)
				}
			}

			if createdAt != "" {
				t, err := time.Parse(time.RFC3339, createdAt)
				if err != nil {
					return fmt.Errorf("parsing --created-at: %w", err)
				}
				profile.CreatedAt = t
			}
			if observedAt != "" {
				t, err := time.Parse(time.RFC3339, observedAt)
				if err != nil {
					return fmt.Errorf("parsing --observed-at: %w", err)
				}
				profile.ObservedAt = t
			}
			if profile.ObservedAt.IsZero() {
				profile.ObservedAt = time.Now().UTC()
			}

			svc := application.NewScoreService(config.New())
			result, err := svc.ScoreProfile(profile, configPath)
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if jsonOutput {
				if detailed {
					return renderJSON(cmd, result)
				}
				return renderJSON(cmd, result.Result)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetailed(result))
			return nil
		},
	}

	cmd.Flags().Int64Var(&profile.Followers, "followers", 0, "Follower count")
	cmd.Flags().Int64Var(&profile.Following, "following", 0, "Accounts followed")
	cmd.Flags().Int64Var(&profile.Statuses, "statuses", 0, "Lifetime post count")
	cmd.Flags().Int64Var(&profile.Favorites, "favorites", 0, "Lifetime likes given")
	cmd.Flags().Int64Var(&profile.Listed, "listed", 0, "Times listed by others")
	cmd.Flags().Int64Var(&profile.Media, "media", 0, "Lifetime media posts")
	cmd.Flags().BoolVar(&profile.Verified, "verified", false, "Platform-verified account")
	cmd.Flags().BoolVar(&profile.DefaultProfile, "default-profile", false, "Profile theme never customized")
	cmd.Flags().BoolVar(&profile.DefaultImage, "default-image", false, "Default avatar still in place")
	cmd.Flags().BoolVar(&profile.PossiblySensitive, "sensitive", false, "Account flagged for sensitive content")
	cmd.Flags().StringVar(&createdAt, "created-at", "", "Account creation time, RFC 3339")
	cmd.Flags().StringVar(&observedAt, "observed-at", "", "Snapshot time, RFC 3339 (defaults to now)")
	cmd.Flags().StringVar(&filePath, "file", "", "Read the profile from a JSON file instead of flags")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a scoring config file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "With --json, include signals, model scores, and penalty")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
