// Package memory provides the in-process implementation of the store
// interfaces. All state lives in memory for the life of the process and is
// guarded by a read/write mutex, since HTTP requests are served concurrently.
package memory
