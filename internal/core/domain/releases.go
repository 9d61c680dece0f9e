package domain

import "time"

// ReleaseOptions configures a new-releases dredge.
type ReleaseOptions struct {
	// Limit is the number of valid releases wanted.
	Limit int

	// Offset is the feed offset to start dredging from.
	Offset int

	// Subject restricts the feed to one subject heading.
	Subject string
}

// ReleaseFeed is the outcome of a new-releases dredge.
type ReleaseFeed struct {
	// Subject echoes the requested subject filter.
	Subject string

	// NumFound is the number of valid releases returned.
	NumFound int

	// Results holds the deduplicated valid releases, feed order.
	Results []Book

	// Run describes the dredge that produced the feed.
	Run DredgeRun
}

// DredgeRun records one bounded widening pass over the releases feed.
// Runs are persisted so feed quality can be inspected afterwards.
type DredgeRun struct {
	// ID is the unique run identifier.
	ID string

	// Subject is the subject filter the run dredged, empty for all.
	Subject string

	// Depth is the number of batches fetched before the run stopped.
	Depth int

	// Scanned is the total number of candidates evaluated.
	Scanned int

	// Rescued is the number of candidates whose missing cover was
	// filled from the commercial catalog before gating.
	Rescued int

	// Kept is the number of candidates that passed the validity gate,
	// before deduplication and truncation.
	Kept int

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took end to end.
	Duration time.Duration
}
