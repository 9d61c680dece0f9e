package services

import (
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// groupRecords buckets records by identity key.
// Keys are returned in first-appearance order so a resolution pass over
// the same input always yields groups, and therefore merged output, in
// the same order.
func groupRecords(records []domain.SourceRecord) ([]string, map[string][]domain.SourceRecord) {
	keys := make([]string, 0, len(records))
	groups := make(map[string][]domain.SourceRecord, len(records))

	for _, record := range records {
		key := record.IdentityKey()
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], record)
	}

	return keys, groups
}
