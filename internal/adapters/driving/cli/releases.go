package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var (
	releasesLimit   int
	releasesOffset  int
	releasesSubject string
	releasesJSON    bool
	releasesLast    bool
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List validated new releases",
	Long: `Dredges the open catalog's recency feed for genuinely new books.

The feed is noisy: reprints, anniversary editions, and perpetual
best-sellers dominate it. Each candidate passes a validity gate
(publication recency, cover present, title and reprint filters) and
the dredge widens in batches until enough valid releases accumulate
or the depth bound is hit. Every run is recorded; --last shows the
most recent one.`,
	RunE: runReleases,
}

func init() {
	releasesCmd.Flags().IntVarP(&releasesLimit, "limit", "n", 20, "number of releases wanted")
	releasesCmd.Flags().IntVar(&releasesOffset, "offset", 0, "feed offset to start from")
	releasesCmd.Flags().StringVarP(&releasesSubject, "subject", "s", "", "restrict to one subject heading")
	releasesCmd.Flags().BoolVar(&releasesJSON, "json", false, "output feed as JSON")
	releasesCmd.Flags().BoolVar(&releasesLast, "last", false, "show the most recent dredge run instead")
	rootCmd.AddCommand(releasesCmd)
}

func runReleases(cmd *cobra.Command, _ []string) error {
	if releaseService == nil {
		return errors.New("release service not configured")
	}

	ctx := context.Background()

	if releasesLast {
		return outputLastRun(ctx, cmd)
	}

	opts := domain.ReleaseOptions{
		Limit:   releasesLimit,
		Offset:  releasesOffset,
		Subject: releasesSubject,
	}

	feed, err := releaseService.NewReleases(ctx, opts)
	if err != nil {
		return fmt.Errorf("releases failed: %w", err)
	}

	if releasesJSON {
		data, err := json.MarshalIndent(feed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal feed: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if feed.NumFound == 0 {
		cmd.Println("No valid new releases found.")
		return nil
	}

	if feed.Subject != "" {
		cmd.Printf("New releases (%s):\n\n", feed.Subject)
	} else {
		cmd.Println("New releases:")
		cmd.Println()
	}
	for i := range feed.Results {
		printBookLine(cmd, i+1, &feed.Results[i])
	}

	run := feed.Run
	cmd.Printf("Kept %d of %d candidates over %d batches in %s.\n",
		feed.NumFound, run.Scanned, run.Depth, run.Duration.Round(time.Millisecond))

	return nil
}

func outputLastRun(ctx context.Context, cmd *cobra.Command) error {
	run, err := releaseService.LastRun(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No dredge runs recorded yet.")
			return nil
		}
		return fmt.Errorf("failed to load last run: %w", err)
	}

	cmd.Printf("Last dredge run: %s\n\n", run.ID)
	if run.Subject != "" {
		cmd.Printf("  Subject:  %s\n", run.Subject)
	}
	cmd.Printf("  Started:  %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Duration: %s\n", run.Duration.Round(time.Millisecond))
	cmd.Printf("  Batches:  %d\n", run.Depth)
	cmd.Printf("  Scanned:  %d candidates\n", run.Scanned)
	cmd.Printf("  Rescued:  %d covers\n", run.Rescued)
	cmd.Printf("  Kept:     %d valid releases\n", run.Kept)

	return nil
}
