package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the response cache",
	Long:  `Inspect or clear the cached catalog responses.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove all cached responses",
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if cacheAdmin == nil {
		return errors.New("cache not configured")
	}

	stats, err := cacheAdmin.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read cache stats: %w", err)
	}

	cmd.Println("Response cache")
	cmd.Printf("  Entries:  %d\n", stats.Entries)
	cmd.Printf("  Expired:  %d\n", stats.Expired)
	cmd.Printf("  Hits:     %d\n", stats.Hits)
	cmd.Printf("  Misses:   %d\n", stats.Misses)
	if total := stats.Hits + stats.Misses; total > 0 {
		cmd.Printf("  Hit rate: %.0f%%\n", float64(stats.Hits)/float64(total)*100)
	}

	return nil
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	if cacheAdmin == nil {
		return errors.New("cache not configured")
	}

	if err := cacheAdmin.Purge(context.Background()); err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}

	cmd.Println("Cache purged.")
	return nil
}
