package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var workJSON bool

var workCmd = &cobra.Command{
	Use:   "work [work-key]",
	Short: "List the editions of a work",
	Long: `Lists the catalogued editions of an Open Library work (OL...W),
with identifiers, publishers, and publication dates per edition.`,
	Args: cobra.ExactArgs(1),
	RunE: runWork,
}

func init() {
	workCmd.Flags().BoolVar(&workJSON, "json", false, "output editions as JSON")
	rootCmd.AddCommand(workCmd)
}

func runWork(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	ctx := context.Background()

	editions, err := discoveryService.WorkEditions(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWorkKey) {
			return fmt.Errorf("%q is not an Open Library work key (expected OL...W)", args[0])
		}
		return fmt.Errorf("work editions failed: %w", err)
	}

	if workJSON {
		data, err := json.MarshalIndent(editions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal editions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(editions.Entries) == 0 {
		cmd.Printf("No editions found for %s.\n", editions.Key)
		return nil
	}

	cmd.Printf("Editions of %s (%d catalogued):\n\n", editions.Key, editions.Size)
	for i := range editions.Entries {
		e := &editions.Entries[i]
		cmd.Printf("  [%d] %s\n", i+1, e.Title)
		if e.PublishDate != "" || len(e.Publishers) > 0 {
			cmd.Printf("      %s", e.PublishDate)
			if len(e.Publishers) > 0 {
				cmd.Printf("  %s", strings.Join(e.Publishers, ", "))
			}
			cmd.Println()
		}
		if len(e.ISBN13s) > 0 {
			cmd.Printf("      ISBN-13 %s\n", strings.Join(e.ISBN13s, ", "))
		}
		if len(e.ISBN10s) > 0 {
			cmd.Printf("      ISBN-10 %s\n", strings.Join(e.ISBN10s, ", "))
		}
		cmd.Println()
	}

	return nil
}
