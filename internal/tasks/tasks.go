// package tasks implements transfer orchestration against the backend API.
//
// The core abstractions are Poller, a bounded polling state machine for
// deferred transfer tasks, and TransferEngine, which drives one transfer
// from submission through reconciliation. Operations emit progress updates
// via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"time"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/services"
	"golang.org/x/time/rate"
)

// Polling policy. Fixed, not user-configurable: the loop is guaranteed to
// terminate within pollInterval × maxPollAttempts (five minutes) no matter
// what the backend does.
const (
	pollInterval           = time.Second
	maxPollAttempts        = 300
	maxConsecutiveFailures = 5
)

// StatusClient is the one backend operation the poll loop needs.
type StatusClient interface {
	TaskStatus(ctx context.Context, taskID string) (*services.TaskStatus, error)
}

// Poller drives a deferred transfer task to a terminal state.
//
// States PENDING and PROGRESS keep polling; SUCCESS and FAILURE stop.
// Two client-side terminals exist on top of the backend's: TimedOut when the
// attempt ceiling is reached, and Cancelled when the context is done. Ticks
// are strictly sequential, so a late terminal state can never race an
// earlier one.
type Poller struct {
	client   StatusClient
	interval time.Duration
	attempts int
	failures int
}

// PollResult is the terminal outcome of one poll loop.
type PollResult struct {
	State   models.JobState
	Payload *services.TransferPayload // set when State is JobSucceeded
	Message string                    // set when State is JobFailed or JobTimedOut
}

// NewPoller creates a Poller with the fixed polling policy.
func NewPoller(client StatusClient) *Poller {
	return &Poller{
		client:   client,
		interval: pollInterval,
		attempts: maxPollAttempts,
		failures: maxConsecutiveFailures,
	}
}

// Poll queries the task status on a fixed cadence until a terminal state,
// the attempt ceiling, the consecutive-failure ceiling, or cancellation.
//
// The caller owns the JobHandle for the duration of this call; when Poll
// returns, no further ticks fire and no late response is observed. Progress
// updates are sent without blocking and may be dropped if the channel is
// full.
func (p *Poller) Poll(ctx context.Context, handle models.JobHandle, progress chan<- ProgressUpdate) *PollResult {
	limiter := rate.NewLimiter(rate.Every(p.interval), 1)
	// Drain the initial token so the first query waits a full interval,
	// matching the backend's expectation that a freshly queued task is not
	// immediately ready.
	limiter.Allow()

	failures := 0

	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return &PollResult{State: models.JobCancelled}
		}

		status, err := p.client.TaskStatus(ctx, handle.TaskID)

		// A response that resolves after cancellation must not mutate any
		// state belonging to the abandoned transfer.
		if ctx.Err() != nil {
			return &PollResult{State: models.JobCancelled}
		}

		if err != nil {
			failures++
			if failures > p.failures {
				return &PollResult{State: models.JobFailed, Message: "status check failed"}
			}
			continue
		}
		failures = 0

		switch status.State {
		case services.StatePending:
			sendProgress(progress, pendingUpdate())
		case services.StateProgress:
			sendProgress(progress, pollingUpdate(status.Current, status.Total, status.Progress, status.Status))
		case services.StateSuccess:
			return &PollResult{State: models.JobSucceeded, Payload: status.Result}
		case services.StateFailure:
			return &PollResult{State: models.JobFailed, Message: status.FailureMessage()}
		default:
			// Unknown states keep polling; the attempt ceiling still bounds
			// the loop.
		}
	}

	return &PollResult{State: models.JobTimedOut, Message: "transfer timed out, please try again with a smaller playlist"}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks the
// poll cadence.
func sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
