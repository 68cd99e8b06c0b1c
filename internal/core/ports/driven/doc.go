// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusSource: Loads the fixed document corpus once at start
//   - CorpusStore: Read-only access to the loaded corpus
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the session degrades gracefully:
//
//   - Presenter: Receives focus requests and navigation targets. Without it,
//     navigation is still reported through session state transitions.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
