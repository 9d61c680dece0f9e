// Package domain defines the core business entities for Bookdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceRecord: A normalised bibliographic record from one catalog
//   - Book: The canonical merged record for one identity
//   - Identifier: A validated ISBN-13 or alternate control number
//   - AuthorProfile / WorkEditions: Discovery entities
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
