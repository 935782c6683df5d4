// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StateStore: The application state container
//   - Scheduler: One-shot deferred tasks that can be cancelled
//   - ResponseGenerator: Produces assistant replies
//   - IDGenerator: Unique identifiers for documents, messages and agents
//   - Random: Pseudo-random integers for synthetic metrics
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain and state packages only
//   - Cannot Import: Any adapter package
package driven
