// package services defines the HTTP client surface for the transfer backend
package services

import (
	"context"

	"github.com/esosaoh/playlifts/internal/models"
)

// Backend defines the operations the transfer backend exposes to this client.
//
// The backend owns the OAuth flows, the provider APIs, and the asynchronous
// transfer workers; this interface only submits work and interprets
// responses.
type Backend interface {
	// CheckSessions queries the combined-login endpoint once per bootstrap.
	// It never fails: any transport error, timeout, or non-2xx response is
	// reported as logged out for both providers.
	CheckSessions(ctx context.Context) models.LoginState

	// LoginURL fetches the provider's authorization URL from the backend.
	LoginURL(ctx context.Context, provider Provider) (string, error)

	// Logout clears the backend session.
	Logout(ctx context.Context) error

	// Health checks backend liveness.
	Health(ctx context.Context) error

	// SpotifyPlaylists lists the authenticated user's Spotify playlists.
	SpotifyPlaylists(ctx context.Context) ([]PlaylistEntry, error)

	// YouTubePlaylists lists the authenticated user's YouTube playlists.
	YouTubePlaylists(ctx context.Context) ([]PlaylistEntry, error)

	// Submit validates and POSTs a transfer request. Exactly one of the
	// three outcome kinds is produced per call; validation failures never
	// reach the network.
	Submit(ctx context.Context, req models.TransferRequest) SubmitOutcome

	// TaskStatus queries the status of a deferred transfer task.
	TaskStatus(ctx context.Context, taskID string) (*TaskStatus, error)
}

// Provider names an external music service for provider-scoped endpoints.
type Provider string

const (
	ProviderSpotify Provider = "spotify"
	ProviderYouTube Provider = "youtube"
)

// PlaylistEntry is one playlist in a provider listing response.
type PlaylistEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TrackCount  int    `json:"tracks_count"`
	Owner       string `json:"owner,omitempty"`
	Public      bool   `json:"public"`
	CoverImage  string `json:"cover_image,omitempty"`
	Description string `json:"description,omitempty"`
}

// SubmitKind classifies a submission response.
type SubmitKind int

const (
	// SubmitImmediate means the backend completed the transfer synchronously
	// and the outcome carries the raw result payload.
	SubmitImmediate SubmitKind = iota
	// SubmitDeferred means the backend accepted the transfer as an
	// asynchronous task identified by Handle.
	SubmitDeferred
	// SubmitRejected means the request was refused, either client-side
	// before any network call or by the backend.
	SubmitRejected
)

func (k SubmitKind) String() string {
	switch k {
	case SubmitImmediate:
		return "immediate"
	case SubmitDeferred:
		return "deferred"
	case SubmitRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SubmitOutcome is the classified result of one transfer submission.
type SubmitOutcome struct {
	Kind         SubmitKind
	Payload      *TransferPayload // set for SubmitImmediate
	Handle       models.JobHandle // set for SubmitDeferred
	Reason       string           // set for SubmitRejected
	AuthRequired bool             // the rejection was a 401 and re-login fixes it
}

// Task states reported by the backend's status endpoint.
const (
	StatePending  = "PENDING"
	StateProgress = "PROGRESS"
	StateSuccess  = "SUCCESS"
	StateFailure  = "FAILURE"
)

// TaskStatus is one snapshot of a deferred transfer task.
type TaskStatus struct {
	State    string           `json:"state"`
	Progress float64          `json:"progress"`
	Current  int              `json:"current"`
	Total    int              `json:"total"`
	Status   string           `json:"status,omitempty"`
	Error    string           `json:"error,omitempty"`
	Result   *TransferPayload `json:"result,omitempty"`
}

// FailureMessage returns the server-provided failure description, preferring
// the status line over the error field, with a generic fallback.
func (t *TaskStatus) FailureMessage() string {
	if t.Status != "" {
		return t.Status
	}
	if t.Error != "" {
		return t.Error
	}
	return "unknown error occurred during transfer"
}

// TrackEntry is one track in a transfer result payload.
type TrackEntry struct {
	Track      string `json:"track"`
	Artist     string `json:"artist"`
	ArtworkURL string `json:"artwork_url,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// TrackGroup is the success or failed half of a transfer result.
//
// Synchronous responses use a "songs" key while polled task results use
// "tracks"; both are decoded so callers see one shape regardless of
// direction.
type TrackGroup struct {
	Count  int          `json:"count"`
	Songs  []TrackEntry `json:"songs"`
	Tracks []TrackEntry `json:"tracks"`
}

// Entries returns whichever list the backend populated.
func (g TrackGroup) Entries() []TrackEntry {
	if len(g.Songs) > 0 {
		return g.Songs
	}
	return g.Tracks
}

// TransferPayload is the raw per-track result body of a completed transfer,
// from either a synchronous submission or a polled SUCCESS state.
type TransferPayload struct {
	Success TrackGroup `json:"success"`
	Failed  TrackGroup `json:"failed"`
}
