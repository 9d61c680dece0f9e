package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var genresJSON bool

var genresCmd = &cobra.Command{
	Use:   "genres [fiction|non-fiction]",
	Short: "Browse the genre taxonomy",
	Long: `Browses the built-in genre taxonomy used for subject filtering.

Without an argument both trees are listed. Fiction genres carry
setting, theme, and trope filters; non-fiction genres carry subject,
tone, and format filters.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"fiction", "non-fiction"},
	RunE:      runGenres,
}

func init() {
	genresCmd.Flags().BoolVar(&genresJSON, "json", false, "output taxonomy as JSON")
	rootCmd.AddCommand(genresCmd)
}

func runGenres(cmd *cobra.Command, args []string) error {
	if genreCatalog == nil {
		return errors.New("genre catalog not configured")
	}

	trees := map[string][]domain.Genre{}
	if len(args) == 0 || args[0] == "fiction" {
		trees["fiction"] = genreCatalog.Fiction()
	}
	if len(args) == 0 || args[0] == "non-fiction" {
		trees["non-fiction"] = genreCatalog.NonFiction()
	}
	if len(trees) == 0 {
		return fmt.Errorf("unknown tree %q (expected fiction or non-fiction)", args[0])
	}

	if genresJSON {
		data, err := json.MarshalIndent(trees, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal taxonomy: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if genres, ok := trees["fiction"]; ok {
		cmd.Println("Fiction")
		cmd.Println("=======")
		outputGenreTree(cmd, genres)
	}
	if genres, ok := trees["non-fiction"]; ok {
		cmd.Println("Non-Fiction")
		cmd.Println("===========")
		outputGenreTree(cmd, genres)
	}

	return nil
}

func outputGenreTree(cmd *cobra.Command, genres []domain.Genre) {
	lastUmbrella := ""
	for _, g := range genres {
		if g.Umbrella != lastUmbrella {
			cmd.Printf("\n[%s]\n", g.Umbrella)
			lastUmbrella = g.Umbrella
		}
		cmd.Printf("  %s\n", g.Name)
		for _, sub := range g.Subgenres {
			cmd.Printf("    - %s\n", sub.Name)
		}
	}
	cmd.Println()
}
