package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure catalog providers, cache lifetimes, and the
release window.

Use subcommands to change specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Set the Google Books API key",
	Long: `Stores the Google Books API key used by the commercial catalog
connector. The key is read from a hidden terminal prompt so it never
lands in shell history.`,
	RunE: runSettingsKey,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider [google|open_library|loc] [on|off]",
	Short: "Enable or disable a catalog provider",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsProvider,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsKeyCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Providers]")
	cmd.Printf("  Google Books:        %s\n", enabledLabel(settings.Providers.Google.Enabled))
	if settings.Providers.Google.APIKey != "" {
		cmd.Printf("  Google API key:      %s\n", maskAPIKey(settings.Providers.Google.APIKey))
	} else {
		cmd.Printf("  Google API key:      (not set)\n")
	}
	cmd.Printf("  Open Library:        %s\n", enabledLabel(settings.Providers.OpenLibrary.Enabled))
	cmd.Printf("  Library of Congress: %s\n", enabledLabel(settings.Providers.LOC.Enabled))
	cmd.Println()

	cmd.Println("[Releases]")
	cmd.Printf("  Window: %d days past, %d days future\n",
		settings.Releases.WindowPastDays, settings.Releases.WindowFutureDays)
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.Cache.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  TTLs: search %dm, lookup %dm, releases %dm\n",
			settings.Cache.SearchTTLMinutes,
			settings.Cache.LookupTTLMinutes,
			settings.Cache.ReleasesTTLMinutes)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	cmd.Println("[Tagging]")
	cmd.Printf("  Genre back-fill below %d subjects\n", settings.Tagging.MinSubjects)

	return nil
}

func runSettingsKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Enter Google Books API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("no key entered")
	}

	if err := settingsService.SetGoogleAPIKey(key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	cmd.Printf("API key saved: %s\n", maskAPIKey(key))
	return nil
}

func runSettingsProvider(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	provider := domain.Provenance(args[0])
	if !provider.IsValid() {
		return fmt.Errorf("unknown provider %q (expected google, open_library, or loc)", args[0])
	}

	var enabled bool
	switch args[1] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("expected on or off, got %q", args[1])
	}

	if err := settingsService.SetProviderEnabled(provider, enabled); err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}

	cmd.Printf("Provider %s %s.\n", provider, map[bool]string{true: "enabled", false: "disabled"}[enabled])
	return nil
}

// Helper functions.

func enabledLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo first
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
