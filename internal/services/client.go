// HTTP client for the Playlifts transfer backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/shared"
)

const defaultBaseURL = "https://api.playlifts.com"

// sessionCheckTimeout bounds the combined-login check. A slow backend at
// bootstrap reads as logged out rather than blocking the UI.
const sessionCheckTimeout = 5 * time.Second

// BackendClient implements [Backend] against the HTTP API.
//
// Credentials travel as session cookies on the injected http.Client's jar;
// the client itself holds no auth state.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Backend = (*BackendClient)(nil)

// NewBackendClient creates a backend client for the given base URL.
func NewBackendClient(baseURL string, client *http.Client) *BackendClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &BackendClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// do performs one credentialed JSON request and returns the status code and
// raw body. The error is non-nil only for transport-level failures.
func (b *BackendClient) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, raw, nil
}

// CheckSessions implements [Backend].
//
// Fail-closed: any transport failure, timeout, or non-2xx status yields the
// zero LoginState. A missing session is a normal first-run condition, not an
// error, so nothing propagates to the caller.
func (b *BackendClient) CheckSessions(ctx context.Context) models.LoginState {
	ctx, cancel := context.WithTimeout(ctx, sessionCheckTimeout)
	defer cancel()

	status, raw, err := b.do(ctx, http.MethodGet, "/auth/check", nil)
	if err != nil || status < 200 || status >= 300 {
		return models.LoginState{}
	}

	var body struct {
		SpotifyLoggedIn bool `json:"spotify_logged_in"`
		YouTubeLoggedIn bool `json:"youtube_logged_in"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return models.LoginState{}
	}

	return models.LoginState{Spotify: body.SpotifyLoggedIn, YouTube: body.YouTubeLoggedIn}
}

// LoginURL implements [Backend].
func (b *BackendClient) LoginURL(ctx context.Context, provider Provider) (string, error) {
	path := fmt.Sprintf("/%s/login", provider)

	status, raw, err := b.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("%w: login URL request returned status %d", shared.ErrAPIRequest, status)
	}

	var body struct {
		AuthURL string `json:"auth_url"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.AuthURL == "" {
		return "", fmt.Errorf("%w: no auth_url in response", shared.ErrAPIRequest)
	}

	return body.AuthURL, nil
}

// Logout implements [Backend].
func (b *BackendClient) Logout(ctx context.Context) error {
	status, _, err := b.do(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: logout returned status %d", shared.ErrAPIRequest, status)
	}
	return nil
}

// Health implements [Backend].
func (b *BackendClient) Health(ctx context.Context) error {
	status, _, err := b.do(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: health check returned status %d", shared.ErrServiceUnavailable, status)
	}
	return nil
}

// SpotifyPlaylists implements [Backend].
func (b *BackendClient) SpotifyPlaylists(ctx context.Context) ([]PlaylistEntry, error) {
	status, raw, err := b.do(ctx, http.MethodGet, "/spotify/playlists", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if status == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: log in with Spotify first", shared.ErrNotAuthenticated)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: playlist listing returned status %d", shared.ErrAPIRequest, status)
	}

	var body struct {
		Playlists []PlaylistEntry `json:"playlists"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode playlists: %v", shared.ErrAPIRequest, err)
	}

	return body.Playlists, nil
}

// YouTubePlaylists implements [Backend].
//
// The YouTube listing uses a different entry shape (id/title only) than the
// Spotify one, so it is mapped onto [PlaylistEntry] here.
func (b *BackendClient) YouTubePlaylists(ctx context.Context) ([]PlaylistEntry, error) {
	status, raw, err := b.do(ctx, http.MethodGet, "/youtube/playlists", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if status == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: log in with YouTube first", shared.ErrNotAuthenticated)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: playlist listing returned status %d", shared.ErrAPIRequest, status)
	}

	var body struct {
		Playlists []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"playlists"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode playlists: %v", shared.ErrAPIRequest, err)
	}

	entries := make([]PlaylistEntry, len(body.Playlists))
	for i, pl := range body.Playlists {
		entries[i] = PlaylistEntry{ID: pl.ID, Name: pl.Title}
	}

	return entries, nil
}

// Submit implements [Backend].
func (b *BackendClient) Submit(ctx context.Context, req models.TransferRequest) SubmitOutcome {
	path, body, err := buildSubmission(req)
	if err != nil {
		return SubmitOutcome{Kind: SubmitRejected, Reason: err.Error()}
	}

	status, raw, err := b.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return SubmitOutcome{
			Kind:   SubmitRejected,
			Reason: "could not reach the transfer service, please try again",
		}
	}

	return classifySubmission(status, raw)
}

// buildSubmission validates the source reference for the request's direction
// and produces the endpoint path and request body. No network traffic occurs
// here; a validation failure rejects the request outright.
func buildSubmission(req models.TransferRequest) (string, any, error) {
	switch req.Direction {
	case models.YouTubeToSpotify:
		ref, err := ValidateYouTubeURL(req.SourceReference)
		if err != nil {
			return "", nil, err
		}
		body := map[string]any{"url": ref}
		if req.Destination.IsLikedSongs() {
			body["playlist_id"] = nil
		} else {
			body["playlist_id"] = req.Destination.ID
		}
		return "/youtube/transfer", body, nil

	case models.SpotifyToYouTube:
		id, err := ExtractSpotifyPlaylistID(req.SourceReference)
		if err != nil {
			return "", nil, err
		}
		if req.Destination.IsLikedSongs() {
			return "", nil, fmt.Errorf("%w: a destination YouTube playlist is required", shared.ErrInvalidInput)
		}
		body := map[string]any{
			"spotify_playlist_id": id,
			"youtube_playlist_id": req.Destination.ID,
		}
		return "/spotify/transfer", body, nil

	default:
		return "", nil, fmt.Errorf("%w: unknown transfer direction", shared.ErrInvalidArgument)
	}
}

// classifySubmission maps a submission response onto exactly one
// [SubmitOutcome] kind: 202 with a task id defers, any other 2xx is an
// immediate result, everything else rejects.
func classifySubmission(status int, raw []byte) SubmitOutcome {
	if status == http.StatusAccepted {
		var body struct {
			TaskID string `json:"task_id"`
		}
		if err := json.Unmarshal(raw, &body); err == nil && body.TaskID != "" {
			return SubmitOutcome{Kind: SubmitDeferred, Handle: models.JobHandle{TaskID: body.TaskID}}
		}
		return SubmitOutcome{Kind: SubmitRejected, Reason: "transfer accepted without a task ID"}
	}

	if status >= 200 && status < 300 {
		var payload TransferPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return SubmitOutcome{Kind: SubmitRejected, Reason: "unreadable transfer result"}
		}
		return SubmitOutcome{Kind: SubmitImmediate, Payload: &payload}
	}

	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	reason := body.Error
	if reason == "" {
		reason = fmt.Sprintf("transfer failed with status %d", status)
	}

	return SubmitOutcome{
		Kind:         SubmitRejected,
		Reason:       reason,
		AuthRequired: status == http.StatusUnauthorized,
	}
}

// TaskStatus implements [Backend].
func (b *BackendClient) TaskStatus(ctx context.Context, taskID string) (*TaskStatus, error) {
	path := fmt.Sprintf("/tasks/status/%s", taskID)

	status, raw, err := b.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("%w: status check returned %d", shared.ErrAPIRequest, status)
	}

	var ts TaskStatus
	if err := json.Unmarshal(raw, &ts); err != nil {
		return nil, fmt.Errorf("%w: failed to decode task status: %v", shared.ErrAPIRequest, err)
	}

	return &ts, nil
}
