package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

var isbnCmd = &cobra.Command{
	Use:   "isbn [identifier]",
	Short: "Validate and convert an identifier",
	Long: `Validates a book identifier without querying any catalog.

Hyphens and whitespace are stripped, ISBN checksums verified, and
ISBN-10s converted to their ISBN-13 form. Plain 8 to 12 digit numbers
are classified as control numbers.`,
	Args: cobra.ExactArgs(1),
	RunE: runISBN,
}

func init() {
	rootCmd.AddCommand(isbnCmd)
}

func runISBN(cmd *cobra.Command, args []string) error {
	id, err := domain.ParseIdentifier(args[0])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIdentifier) {
			return fmt.Errorf("%q is not a valid ISBN or control number", args[0])
		}
		return err
	}

	switch id.Kind {
	case domain.IdentifierISBN13:
		cmd.Printf("Valid ISBN-13: %s\n", id.Value)
	case domain.IdentifierControlNumber:
		cmd.Printf("Control number: %s\n", id.Value)
	}

	return nil
}
