package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/services"
	"github.com/esosaoh/playlifts/internal/shared"
	ptesting "github.com/esosaoh/playlifts/internal/testing"
)

func TestRequiredSession(t *testing.T) {
	if got := RequiredSession(models.YouTubeToSpotify); got != services.ProviderSpotify {
		t.Errorf("youtube-to-spotify should gate on Spotify, got %s", got)
	}
	if got := RequiredSession(models.SpotifyToYouTube); got != services.ProviderYouTube {
		t.Errorf("spotify-to-youtube should gate on YouTube, got %s", got)
	}
}

func TestEngineGate(t *testing.T) {
	tests := []struct {
		name      string
		state     models.LoginState
		direction models.Direction
		wantErr   bool
	}{
		{"spotify session covers youtube-to-spotify", models.LoginState{Spotify: true}, models.YouTubeToSpotify, false},
		{"youtube session covers spotify-to-youtube", models.LoginState{YouTube: true}, models.SpotifyToYouTube, false},
		{"missing spotify session blocks youtube-to-spotify", models.LoginState{YouTube: true}, models.YouTubeToSpotify, true},
		{"missing youtube session blocks spotify-to-youtube", models.LoginState{Spotify: true}, models.SpotifyToYouTube, true},
		{"logged out blocks both", models.LoginState{}, models.YouTubeToSpotify, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &ptesting.MockBackend{LoginState: tt.state}
			engine := NewTransferEngine(backend)

			err := engine.Gate(context.Background(), tt.direction)
			if tt.wantErr && !errors.Is(err, shared.ErrNotAuthenticated) {
				t.Errorf("expected ErrNotAuthenticated, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEngineRun(t *testing.T) {
	bothLive := models.LoginState{Spotify: true, YouTube: true}
	req := models.TransferRequest{
		Direction:       models.YouTubeToSpotify,
		SourceReference: "https://music.youtube.com/playlist?list=PLabc",
	}

	t.Run("nil backend", func(t *testing.T) {
		engine := NewTransferEngine(nil)
		if _, err := engine.Run(context.Background(), req, nil); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("gating failure stops before submission", func(t *testing.T) {
		backend := &ptesting.MockBackend{}
		engine := NewTransferEngine(backend)

		if _, err := engine.Run(context.Background(), req, nil); !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Errorf("expected ErrNotAuthenticated, got %v", err)
		}
		if backend.SubmitCalls != 0 {
			t.Errorf("expected no submission after a gating failure, got %d", backend.SubmitCalls)
		}
	})

	t.Run("immediate outcome reconciles directly", func(t *testing.T) {
		backend := &ptesting.MockBackend{
			LoginState: bothLive,
			Outcome: services.SubmitOutcome{
				Kind: services.SubmitImmediate,
				Payload: &services.TransferPayload{
					Success: services.TrackGroup{Count: 1, Songs: []services.TrackEntry{{Track: "A", Artist: "X"}}},
					Failed:  services.TrackGroup{Count: 1, Songs: []services.TrackEntry{{Track: "B", Artist: "Y", Reason: "not found"}}},
				},
			},
		}
		engine := NewTransferEngine(backend)

		result, err := engine.Run(context.Background(), req, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.SuccessCount != 1 || result.FailedCount() != 1 {
			t.Errorf("unexpected counts: %+v", result)
		}
		if backend.StatusCalls != 0 {
			t.Errorf("an immediate outcome must not poll, got %d status calls", backend.StatusCalls)
		}
	})

	t.Run("deferred outcome polls to success", func(t *testing.T) {
		backend := &ptesting.MockBackend{
			LoginState: bothLive,
			Outcome: services.SubmitOutcome{
				Kind:   services.SubmitDeferred,
				Handle: models.JobHandle{TaskID: "t1"},
			},
			Statuses: []*services.TaskStatus{
				{State: services.StateSuccess, Result: &services.TransferPayload{
					Success: services.TrackGroup{Count: 1, Tracks: []services.TrackEntry{{Track: "A", Artist: "X"}}},
				}},
			},
		}
		engine := NewTransferEngine(backend)

		result, err := engine.Run(context.Background(), req, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.SuccessCount != 1 {
			t.Errorf("expected one successful track, got %+v", result)
		}
		if backend.StatusCalls != 1 {
			t.Errorf("expected one status call, got %d", backend.StatusCalls)
		}
	})

	t.Run("deferred outcome surfaces a task failure", func(t *testing.T) {
		backend := &ptesting.MockBackend{
			LoginState: bothLive,
			Outcome: services.SubmitOutcome{
				Kind:   services.SubmitDeferred,
				Handle: models.JobHandle{TaskID: "t1"},
			},
			Statuses: []*services.TaskStatus{
				{State: services.StateFailure, Status: "quota exceeded"},
			},
		}
		engine := NewTransferEngine(backend)

		_, err := engine.Run(context.Background(), req, nil)
		if !errors.Is(err, shared.ErrTransferFailed) {
			t.Fatalf("expected ErrTransferFailed, got %v", err)
		}
	})

	t.Run("rejection maps to ErrTransferRejected", func(t *testing.T) {
		backend := &ptesting.MockBackend{
			LoginState: bothLive,
			Outcome:    services.SubmitOutcome{Kind: services.SubmitRejected, Reason: "Invalid YouTube URL"},
		}
		engine := NewTransferEngine(backend)

		_, err := engine.Run(context.Background(), req, nil)
		if !errors.Is(err, shared.ErrTransferRejected) {
			t.Fatalf("expected ErrTransferRejected, got %v", err)
		}
	})

	t.Run("auth rejection maps to ErrNotAuthenticated", func(t *testing.T) {
		backend := &ptesting.MockBackend{
			LoginState: bothLive,
			Outcome: services.SubmitOutcome{
				Kind:         services.SubmitRejected,
				Reason:       "Not authenticated with YouTube",
				AuthRequired: true,
			},
		}
		engine := NewTransferEngine(backend)

		_, err := engine.Run(context.Background(), req, nil)
		if !errors.Is(err, shared.ErrNotAuthenticated) {
			t.Fatalf("expected ErrNotAuthenticated, got %v", err)
		}
	})
}
