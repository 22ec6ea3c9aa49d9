// Package store defines interfaces for task storage operations.
// These interfaces abstract the underlying storage mechanism from the
// service layer, and the sentinel errors declared here are the contract
// every implementation reports failures with.
package store
