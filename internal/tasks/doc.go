// Package tasks orchestrates playlist transfers against the backend API.
//
// # Transfer Engine
//
// [TransferEngine.Run] is the single entry point for one transfer: it gates
// on session readiness, submits the request, and resolves the outcome.
// A synchronous backend response reconciles immediately; a 202 hands the
// task id to the poll loop first. Progress flows out through a non-blocking
// channel consumed by the CLI or TUI.
//
// # Poll Loop
//
// [Poller] is a bounded state machine over the backend's task states:
//
//	PENDING / PROGRESS  → keep polling (identical transition rules)
//	SUCCESS             → terminal, carries the result payload
//	FAILURE             → terminal, carries the server message
//
// Three client-side exits guarantee termination: an attempt ceiling of 300
// ticks at one-second cadence, a consecutive-failure ceiling of five
// transport or non-2xx errors (reset on any readable response), and context
// cancellation. Cancellation stops the cadence immediately and discards any
// in-flight response, so a late tick can never touch an abandoned transfer.
// The cadence is driven by a [rate.Limiter] so waits are cancellable.
//
// # Reconciliation
//
// [Reconcile] flattens the backend's success/failed track arrays into one
// ordered outcome list. It is pure: calling it twice on the same payload
// yields equal results, and malformed payloads become empty lists rather
// than errors.
package tasks
