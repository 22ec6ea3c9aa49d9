// Package domain contains the core business entities of the task service:
// the Task record, its seed data and the error types used to report
// validation failures. It has no knowledge of storage or HTTP.
//
// Sub-packages hold the pure logic built on top of the entity:
//   - validation: the composable rule set applied before any mutation
//   - query: filtering and sorting over task sequences
package domain
