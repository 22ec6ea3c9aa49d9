// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - TaskService defines the task operations available to the delivery mechanisms
//
// 2. Use Case Implementations:
//   - Validate tasks before any mutation reaches the store
//   - Apply the query engine to store snapshots for filtering and sorting
//   - Emit a task event after every successful mutation
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include the task store, the event emitter, and the logger
//
// 4. Error Handling:
//   - Translate store errors to service-level sentinel errors
//   - Provide meaningful error context for API responses
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations.
package service
