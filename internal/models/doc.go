// Package models defines domain entities for the Playlifts transfer client.
//
// The package contains plain value types shared by the services, tasks, and
// CLI layers:
//   - [Destination] : transfer target, defaulting to the Liked Songs collection
//   - [TransferRequest] : one submission (source reference + destination + direction)
//   - [JobHandle] : opaque server-side task identifier for deferred transfers
//   - [JobState] : client-side state machine states, including the
//     client-originated TimedOut and Cancelled terminals
//   - [TrackOutcome] / [TransferResult] : reconciled per-track results
//   - [LoginState] : per-provider session readiness
//
// Nothing here is persisted; every value lives only for the duration of one
// CLI invocation or TUI session.
package models
