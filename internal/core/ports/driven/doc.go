// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Connector: Fetches raw catalog records from one provider
//   - Normaliser: Parses raw payloads into SourceRecords
//   - NormaliserRegistry: Dispatches payloads to the right normaliser
//   - Enricher / EnricherPipeline: Classifies merged books
//   - ConfigStore: Application configuration
//   - VocabularyStore: Heuristic keyword tables
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - CacheStore: Provider response cache. Without it every request
//     goes to the network.
//   - RunStore: Dredge run log. Without it runs are not recorded.
//   - ControlNumberLookup / DiscoveryConnector: Extra catalog surfaces
//     implemented by the connectors that have them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
