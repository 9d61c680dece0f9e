// Package services implements the driving port interfaces.
// Services contain the resolution pipeline (identity grouping, field
// merge, enrichment, ranking, release gating) and orchestrate calls
// to driven ports (connectors, normalisers, stores).
//
// Services are pure Go with no CGO or external dependencies.
package services
