// Package services defines the [Backend] interface for the Playlifts
// transfer API and implements it over HTTP.
//
// # Backend Interface
//
// The backend owns OAuth, provider APIs, and the asynchronous transfer
// workers. This package only submits work and interprets responses, so the
// interface is narrow: session readiness, login URLs, playlist listings,
// transfer submission, and task status.
//
// # Submission Classification
//
// [BackendClient.Submit] produces exactly one [SubmitOutcome] per call:
//   - a 202 response carrying a task_id defers the transfer to the poll loop
//   - any other 2xx response carries the per-track result inline
//   - validation failures, transport failures, and non-2xx statuses reject
//
// Source references are validated client-side before any network call:
// YouTube sources must be youtube.com URLs with a "list" query parameter,
// Spotify sources may be bare IDs or open.spotify.com/playlist/{id} URLs.
//
// # Session Readiness
//
// [BackendClient.CheckSessions] is deliberately infallible. The absence of a
// session is the normal first-run state, so timeouts and errors all collapse
// to a logged-out [models.LoginState] and the caller decides whether to
// re-check.
//
// # Error Handling
//
// Fallible operations wrap typed errors from the shared package:
//   - [shared.ErrInvalidInput] : source reference failed validation
//   - [shared.ErrNotAuthenticated] : 401 from a provider-scoped endpoint
//   - [shared.ErrAPIRequest] : transport failure or unexpected status
//   - [shared.ErrServiceUnavailable] : backend health check failed
package services
