package domain

import (
	"fmt"
	"strings"
)

// IdentifierKind distinguishes what a cleaned identifier turned out to be.
type IdentifierKind int

const (
	// IdentifierISBN13 is a checksum-valid ISBN-13 (possibly converted
	// from a valid ISBN-10).
	IdentifierISBN13 IdentifierKind = iota

	// IdentifierControlNumber is an 8 to 12 digit string that is not a
	// valid ISBN. Typically a Library of Congress control number.
	// Callers decide whether to treat it as a lookup key; the length
	// test is intentionally loose and can misclassify short numerics.
	IdentifierControlNumber
)

// Identifier is a validated book identifier.
type Identifier struct {
	// Kind says whether Value is an ISBN-13 or an alternate number.
	Kind IdentifierKind

	// Value is the cleaned identifier string.
	Value string
}

// ParseIdentifier validates a raw identifier string.
// Whitespace and hyphens are stripped first. A 13-digit string must
// pass the ISBN-13 checksum; a 10-character string must pass the
// ISBN-10 checksum and is converted to its ISBN-13 form. Anything else
// that is 8 to 12 digits is classified as a control number. Everything
// else fails with ErrInvalidIdentifier.
func ParseIdentifier(raw string) (Identifier, error) {
	cleaned := cleanIdentifier(raw)

	switch {
	case len(cleaned) == 13 && allDigits(cleaned):
		if !ValidISBN13(cleaned) {
			return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
		}
		return Identifier{Kind: IdentifierISBN13, Value: cleaned}, nil

	case len(cleaned) == 10 && ValidISBN10(cleaned):
		return Identifier{Kind: IdentifierISBN13, Value: ConvertISBN10(cleaned)}, nil

	case len(cleaned) >= 8 && len(cleaned) <= 12 && allDigits(cleaned):
		return Identifier{Kind: IdentifierControlNumber, Value: cleaned}, nil
	}

	return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
}

// ValidISBN13 reports whether s is exactly 13 digits with a correct
// checksum: each of the first 12 digits weighted alternately 1 and 3,
// summed mod 10, subtracted from 10 mod 10, must equal the 13th digit.
func ValidISBN13(s string) bool {
	if len(s) != 13 || !allDigits(s) {
		return false
	}
	total := 0
	for i := 0; i < 12; i++ {
		d := int(s[i] - '0')
		if i%2 == 0 {
			total += d
		} else {
			total += d * 3
		}
	}
	check := (10 - total%10) % 10
	return check == int(s[12]-'0')
}

// ValidISBN10 reports whether s is exactly 10 characters with a correct
// checksum: digit[i] weighted (10-i) for the first nine, plus the check
// character ('X' counting as 10), divisible by 11.
func ValidISBN10(s string) bool {
	if len(s) != 10 || !allDigits(s[:9]) {
		return false
	}
	total := 0
	for i := 0; i < 9; i++ {
		total += int(s[i]-'0') * (10 - i)
	}
	switch check := s[9]; {
	case check == 'X' || check == 'x':
		total += 10
	case check >= '0' && check <= '9':
		total += int(check - '0')
	default:
		return false
	}
	return total%11 == 0
}

// ConvertISBN10 converts a valid ISBN-10 to its ISBN-13 form:
// prepend "978" to the first nine digits and recompute the check digit.
// The input must already pass ValidISBN10.
func ConvertISBN10(isbn10 string) string {
	base := "978" + isbn10[:9]
	total := 0
	for i := 0; i < 12; i++ {
		d := int(base[i] - '0')
		if i%2 == 0 {
			total += d
		} else {
			total += d * 3
		}
	}
	check := (10 - total%10) % 10
	return base + string(rune('0'+check))
}

func cleanIdentifier(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == '-' || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
