package tasks

import (
	"context"
	"fmt"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/services"
	"github.com/esosaoh/playlifts/internal/shared"
)

// TransferEngine drives one transfer from submission through reconciliation.
//
// Each Run owns an independent poll loop; nothing is shared between
// concurrent transfers.
type TransferEngine struct {
	backend services.Backend
}

// NewTransferEngine creates a TransferEngine backed by the given API client.
func NewTransferEngine(backend services.Backend) *TransferEngine {
	return &TransferEngine{backend: backend}
}

// RequiredSession returns the provider whose session gates the given
// direction. The backend checks its own side of each transfer, so the client
// gates on the provider the backend cannot check until submission.
func RequiredSession(d models.Direction) services.Provider {
	if d == models.SpotifyToYouTube {
		return services.ProviderYouTube
	}
	return services.ProviderSpotify
}

// Gate verifies the session needed for the request's direction is live.
//
// The login state is fetched fresh rather than cached: a stale bootstrap
// check gating a later submission would surface as a confusing backend 401.
func (e *TransferEngine) Gate(ctx context.Context, d models.Direction) error {
	state := e.backend.CheckSessions(ctx)

	switch RequiredSession(d) {
	case services.ProviderYouTube:
		if !state.YouTube {
			return fmt.Errorf("%w: log in with YouTube before transferring", shared.ErrNotAuthenticated)
		}
	case services.ProviderSpotify:
		if !state.Spotify {
			return fmt.Errorf("%w: log in with Spotify before transferring", shared.ErrNotAuthenticated)
		}
	}
	return nil
}

// Run submits the request and resolves it to a reconciled result.
//
// An immediate response reconciles directly; a deferred one is polled to a
// terminal state first. Every failure path maps onto the shared error
// taxonomy so the CLI can choose the right message.
func (e *TransferEngine) Run(ctx context.Context, req models.TransferRequest, progress chan<- ProgressUpdate) (*models.TransferResult, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend client not initialized", shared.ErrServiceUnavailable)
	}

	if err := e.Gate(ctx, req.Direction); err != nil {
		return nil, err
	}

	sendProgress(progress, submitUpdate(req))

	outcome := e.backend.Submit(ctx, req)
	switch outcome.Kind {
	case services.SubmitImmediate:
		result := Reconcile(outcome.Payload)
		sendProgress(progress, reconciledUpdate(&result))
		return &result, nil

	case services.SubmitDeferred:
		sendProgress(progress, queuedUpdate(outcome.Handle))
		return e.await(ctx, outcome.Handle, progress)

	case services.SubmitRejected:
		if outcome.AuthRequired {
			return nil, fmt.Errorf("%w: %s", shared.ErrNotAuthenticated, outcome.Reason)
		}
		return nil, fmt.Errorf("%w: %s", shared.ErrTransferRejected, outcome.Reason)

	default:
		return nil, fmt.Errorf("%w: unexpected submission outcome", shared.ErrAPIRequest)
	}
}

// await polls a deferred task and reconciles its terminal payload.
func (e *TransferEngine) await(ctx context.Context, handle models.JobHandle, progress chan<- ProgressUpdate) (*models.TransferResult, error) {
	poller := NewPoller(e.backend)

	switch res := poller.Poll(ctx, handle, progress); res.State {
	case models.JobSucceeded:
		result := Reconcile(res.Payload)
		sendProgress(progress, reconciledUpdate(&result))
		return &result, nil
	case models.JobFailed:
		return nil, fmt.Errorf("%w: %s", shared.ErrTransferFailed, res.Message)
	case models.JobTimedOut:
		return nil, fmt.Errorf("%w: %s", shared.ErrTimeout, res.Message)
	case models.JobCancelled:
		return nil, context.Cause(ctx)
	default:
		return nil, fmt.Errorf("%w: poll loop ended in non-terminal state", shared.ErrAPIRequest)
	}
}
