package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var authorJSON bool

var authorCmd = &cobra.Command{
	Use:   "author [key-or-name]",
	Short: "Show an author profile",
	Long: `Shows an author profile with bibliography.

An Open Library author key (OL...A) yields the catalogued profile:
biography, lifespan, photo, and works. Anything else is treated as an
author name and resolved through the commercial catalog into a
generated profile.`,
	Args: cobra.ExactArgs(1),
	RunE: runAuthor,
}

func init() {
	authorCmd.Flags().BoolVar(&authorJSON, "json", false, "output profile as JSON")
	rootCmd.AddCommand(authorCmd)
}

func runAuthor(cmd *cobra.Command, args []string) error {
	if discoveryService == nil {
		return errors.New("discovery service not configured")
	}

	ctx := context.Background()

	profile, err := discoveryService.AuthorProfile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("author profile failed: %w", err)
	}

	if authorJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n", profile.Name)
	if profile.BirthDate != "" || profile.DeathDate != "" {
		cmd.Printf("  %s", profile.BirthDate)
		if profile.DeathDate != "" {
			cmd.Printf(" - %s", profile.DeathDate)
		}
		cmd.Println()
	}
	if profile.PhotoURL != "" {
		cmd.Printf("  Photo: %s\n", profile.PhotoURL)
	}
	if profile.Bio != "" {
		cmd.Println()
		cmd.Println(profile.Bio)
	}

	if len(profile.Books) > 0 {
		cmd.Println()
		cmd.Printf("Bibliography (%d):\n\n", len(profile.Books))
		for i := range profile.Books {
			printBookLine(cmd, i+1, &profile.Books[i])
		}
	}

	cmd.Printf("Source: %s\n", profile.Source)
	return nil
}
