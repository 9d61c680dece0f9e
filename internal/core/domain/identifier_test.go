package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseIdentifier_ISBN13 tests direct ISBN-13 validation
func TestParseIdentifier_ISBN13(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain digits", "9780306406157", "9780306406157"},
		{"hyphenated", "978-0-306-40615-7", "9780306406157"},
		{"spaced", "978 0306 406157", "9780306406157"},
		{"zero block", "9780000000002", "9780000000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentifier(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, IdentifierISBN13, id.Kind)
			assert.Equal(t, tt.want, id.Value)
		})
	}
}

// TestParseIdentifier_ISBN10Conversion tests ISBN-10 to ISBN-13 conversion
func TestParseIdentifier_ISBN10Conversion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"numeric check digit", "0306406152", "9780306406157"},
		{"X check digit", "097522980X", "9780975229804"},
		{"lowercase x", "097522980x", "9780975229804"},
		{"hyphenated", "0-306-40615-2", "9780306406157"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentifier(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, IdentifierISBN13, id.Kind)
			assert.Equal(t, tt.want, id.Value)
		})
	}
}

// TestParseIdentifier_RoundTrip tests that every converted ISBN-10
// yields a string that itself passes ISBN-13 validation
func TestParseIdentifier_RoundTrip(t *testing.T) {
	valid10s := []string{"0306406152", "097522980X", "054792822X", "0131103628"}

	for _, raw := range valid10s {
		t.Run(raw, func(t *testing.T) {
			id, err := ParseIdentifier(raw)
			require.NoError(t, err)
			assert.True(t, ValidISBN13(id.Value), "converted value %q must pass ISBN-13 checksum", id.Value)
		})
	}
}

// TestParseIdentifier_ControlNumber tests the alternate identifier path
func TestParseIdentifier_ControlNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"eight digit control number", "85153773", "85153773"},
		{"ten digit failed checksum", "2021043692", "2021043692"},
		{"twelve digits", "202104369212", "202104369212"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentifier(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, IdentifierControlNumber, id.Kind)
			assert.Equal(t, tt.want, id.Value)
		})
	}
}

// TestParseIdentifier_Invalid tests rejection of malformed identifiers
func TestParseIdentifier_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"bad isbn13 checksum", "9780306406158"},
		{"bad isbn10 checksum", "0306406153"},
		{"isbn13 with letter", "978030640615X"},
		{"too short", "1234567"},
		{"fourteen digits", "97803064061579"},
		{"letters", "not-an-isbn"},
		{"ten chars nonnumeric body", "03064a6152"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentifier(tt.raw)
			require.ErrorIs(t, err, ErrInvalidIdentifier)
		})
	}
}

// TestValidISBN10 tests the ISBN-10 checksum directly
func TestValidISBN10(t *testing.T) {
	assert.True(t, ValidISBN10("0306406152"))
	assert.True(t, ValidISBN10("097522980X"))
	assert.False(t, ValidISBN10("0306406153"))
	assert.False(t, ValidISBN10("030640615"))
	assert.False(t, ValidISBN10("03064061521"))
	assert.False(t, ValidISBN10("030640615Y"))
}

// TestValidISBN13 tests the ISBN-13 checksum directly
func TestValidISBN13(t *testing.T) {
	assert.True(t, ValidISBN13("9780306406157"))
	assert.True(t, ValidISBN13("9780547928227"))
	assert.False(t, ValidISBN13("9780306406156"))
	assert.False(t, ValidISBN13("978030640615"))
	assert.False(t, ValidISBN13("978O306406157"))
}

// TestConvertISBN10 tests the conversion arithmetic
func TestConvertISBN10(t *testing.T) {
	assert.Equal(t, "9780306406157", ConvertISBN10("0306406152"))
	assert.Equal(t, "9780547928227", ConvertISBN10("054792822X"))
}
