package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/shared"
)

func TestNewBackendClient(t *testing.T) {
	t.Run("with custom base URL and client", func(t *testing.T) {
		customClient := &http.Client{}
		c := NewBackendClient("http://example.com", customClient)

		if c.baseURL != "http://example.com" {
			t.Errorf("expected baseURL 'http://example.com', got %s", c.baseURL)
		}
		if c.httpClient != customClient {
			t.Error("expected custom client to be used")
		}
	})

	t.Run("with empty base URL", func(t *testing.T) {
		c := NewBackendClient("", nil)

		if c.baseURL != defaultBaseURL {
			t.Errorf("expected default baseURL %s, got %s", defaultBaseURL, c.baseURL)
		}
		if c.httpClient != http.DefaultClient {
			t.Error("expected http.DefaultClient to be used")
		}
	})
}

func TestCheckSessions(t *testing.T) {
	t.Run("both providers logged in", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/check" {
				t.Errorf("expected path /auth/check, got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]bool{
				"spotify_logged_in": true,
				"youtube_logged_in": true,
			})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		state := c.CheckSessions(context.Background())

		if !state.Spotify || !state.YouTube {
			t.Errorf("expected both logged in, got %+v", state)
		}
	})

	t.Run("missing fields read as logged out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]bool{"spotify_logged_in": true})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		state := c.CheckSessions(context.Background())

		if !state.Spotify {
			t.Error("expected spotify logged in")
		}
		if state.YouTube {
			t.Error("expected youtube logged out when field is missing")
		}
	})

	t.Run("non-2xx reads as logged out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		state := c.CheckSessions(context.Background())

		if state.Spotify || state.YouTube {
			t.Errorf("expected logged out state, got %+v", state)
		}
	})

	t.Run("transport failure reads as logged out and never panics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := NewBackendClient(server.URL, nil)
		state := c.CheckSessions(context.Background())

		if state.Spotify || state.YouTube {
			t.Errorf("expected logged out state, got %+v", state)
		}
	})

	t.Run("malformed body reads as logged out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		state := c.CheckSessions(context.Background())

		if state.Spotify || state.YouTube {
			t.Errorf("expected logged out state, got %+v", state)
		}
	})
}

func TestSubmit(t *testing.T) {
	t.Run("validation failures issue no network call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request should reach the backend for an invalid reference")
		}))
		defer server.Close()
		c := NewBackendClient(server.URL, nil)

		tests := []struct {
			name string
			req  models.TransferRequest
		}{
			{
				name: "empty youtube reference",
				req:  models.TransferRequest{Direction: models.YouTubeToSpotify},
			},
			{
				name: "youtube reference with wrong host",
				req: models.TransferRequest{
					Direction:       models.YouTubeToSpotify,
					SourceReference: "https://vimeo.com/playlist?list=abc",
				},
			},
			{
				name: "youtube reference without list param",
				req: models.TransferRequest{
					Direction:       models.YouTubeToSpotify,
					SourceReference: "https://music.youtube.com/watch?v=abc",
				},
			},
			{
				name: "empty spotify reference",
				req:  models.TransferRequest{Direction: models.SpotifyToYouTube},
			},
			{
				name: "spotify direction without destination playlist",
				req: models.TransferRequest{
					Direction:       models.SpotifyToYouTube,
					SourceReference: "37i9dQZF1DXcBWIGoYBM5M",
					Destination:     models.LikedSongs(),
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				outcome := c.Submit(context.Background(), tt.req)
				if outcome.Kind != SubmitRejected {
					t.Errorf("expected SubmitRejected, got %s", outcome.Kind)
				}
				if outcome.Reason == "" {
					t.Error("expected a rejection reason")
				}
			})
		}
	})

	t.Run("202 with task id defers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/youtube/transfer" {
				t.Errorf("expected path /youtube/transfer, got %s", r.URL.Path)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["url"] != "https://music.youtube.com/playlist?list=PLabc" {
				t.Errorf("unexpected url in body: %v", body["url"])
			}
			if body["playlist_id"] != nil {
				t.Errorf("expected null playlist_id for liked songs, got %v", body["playlist_id"])
			}

			w.WriteHeader(http.StatusAccepted)
			json.NewEncoder(w).Encode(map[string]string{"task_id": "t1"})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.YouTubeToSpotify,
			SourceReference: "https://music.youtube.com/playlist?list=PLabc",
			Destination:     models.LikedSongs(),
		})

		if outcome.Kind != SubmitDeferred {
			t.Fatalf("expected SubmitDeferred, got %s (%s)", outcome.Kind, outcome.Reason)
		}
		if outcome.Handle.TaskID != "t1" {
			t.Errorf("expected task t1, got %s", outcome.Handle.TaskID)
		}
	})

	t.Run("202 without task id rejects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			w.Write([]byte("{}"))
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.YouTubeToSpotify,
			SourceReference: "https://music.youtube.com/playlist?list=PLabc",
		})

		if outcome.Kind != SubmitRejected {
			t.Errorf("expected SubmitRejected, got %s", outcome.Kind)
		}
	})

	t.Run("200 with result payload is immediate", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/spotify/transfer" {
				t.Errorf("expected path /spotify/transfer, got %s", r.URL.Path)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["spotify_playlist_id"] != "37i9dQZF1DXcBWIGoYBM5M" {
				t.Errorf("unexpected spotify_playlist_id: %v", body["spotify_playlist_id"])
			}
			if body["youtube_playlist_id"] != "PLdest" {
				t.Errorf("unexpected youtube_playlist_id: %v", body["youtube_playlist_id"])
			}

			json.NewEncoder(w).Encode(map[string]any{
				"success": map[string]any{"count": 1, "songs": []map[string]string{{"track": "A", "artist": "X"}}},
				"failed":  map[string]any{"count": 0, "songs": []map[string]string{}},
			})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.SpotifyToYouTube,
			SourceReference: "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M",
			Destination:     models.Destination{ID: "PLdest", DisplayName: "Mix"},
		})

		if outcome.Kind != SubmitImmediate {
			t.Fatalf("expected SubmitImmediate, got %s (%s)", outcome.Kind, outcome.Reason)
		}
		if outcome.Payload == nil || len(outcome.Payload.Success.Entries()) != 1 {
			t.Errorf("expected one success entry, got %+v", outcome.Payload)
		}
	})

	t.Run("4xx rejects with server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid YouTube URL"})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.YouTubeToSpotify,
			SourceReference: "https://music.youtube.com/playlist?list=PLabc",
		})

		if outcome.Kind != SubmitRejected {
			t.Fatalf("expected SubmitRejected, got %s", outcome.Kind)
		}
		if outcome.Reason != "Invalid YouTube URL" {
			t.Errorf("expected server error surfaced verbatim, got %q", outcome.Reason)
		}
		if outcome.AuthRequired {
			t.Error("400 should not flag AuthRequired")
		}
	})

	t.Run("401 rejects with auth required", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated with YouTube"})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.SpotifyToYouTube,
			SourceReference: "37i9dQZF1DXcBWIGoYBM5M",
			Destination:     models.Destination{ID: "PLdest"},
		})

		if outcome.Kind != SubmitRejected {
			t.Fatalf("expected SubmitRejected, got %s", outcome.Kind)
		}
		if !outcome.AuthRequired {
			t.Error("expected AuthRequired on 401")
		}
	})

	t.Run("transport failure rejects with connectivity message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		c := NewBackendClient(server.URL, nil)
		outcome := c.Submit(context.Background(), models.TransferRequest{
			Direction:       models.YouTubeToSpotify,
			SourceReference: "https://music.youtube.com/playlist?list=PLabc",
		})

		if outcome.Kind != SubmitRejected {
			t.Fatalf("expected SubmitRejected, got %s", outcome.Kind)
		}
		if !strings.Contains(outcome.Reason, "try again") {
			t.Errorf("expected a retryable connectivity message, got %q", outcome.Reason)
		}
	})
}

func TestTaskStatus(t *testing.T) {
	t.Run("decodes a progress snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/tasks/status/t1" {
				t.Errorf("expected path /tasks/status/t1, got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"state": "PROGRESS", "progress": 40.0, "current": 4, "total": 10, "status": "Processed 4/10 songs",
			})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		status, err := c.TaskStatus(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if status.State != StateProgress {
			t.Errorf("expected PROGRESS, got %s", status.State)
		}
		if status.Current != 4 || status.Total != 10 {
			t.Errorf("unexpected progress counters: %+v", status)
		}
	})

	t.Run("decodes a success payload with tracks shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"state": "SUCCESS",
				"result": map[string]any{
					"success": map[string]any{"count": 1, "tracks": []map[string]string{{"track": "A", "artist": "X"}}},
					"failed":  map[string]any{"count": 0, "tracks": []map[string]string{}},
				},
			})
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		status, err := c.TaskStatus(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if status.State != StateSuccess {
			t.Errorf("expected SUCCESS, got %s", status.State)
		}
		if status.Result == nil || len(status.Result.Success.Entries()) != 1 {
			t.Errorf("expected one success entry, got %+v", status.Result)
		}
	})

	t.Run("non-2xx is an API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewBackendClient(server.URL, nil)
		if _, err := c.TaskStatus(context.Background(), "t1"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name   string
		status TaskStatus
		want   string
	}{
		{"prefers status line", TaskStatus{Status: "ran out of quota", Error: "QuotaError"}, "ran out of quota"},
		{"falls back to error", TaskStatus{Error: "QuotaError"}, "QuotaError"},
		{"generic fallback", TaskStatus{}, "unknown error occurred during transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.FailureMessage(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
