// Package events provides types and interfaces for publishing task changes.
//
// Services emit a TaskEvent after every successful mutation without knowing
// which handlers will process it. The primary components are:
// - TaskEvent: A change made to a stored task
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
// - AuditLogHandler: Handler that records every change in the log
package events
