// Package pipeline runs one design batch: tile every fragment, optionally
// clean and optimize the whole pool, and report what happened through the
// logger and metrics it is handed.
//
// Stages are strictly sequential over the shared pool. Cancellation is
// checked between stages only.
package pipeline
