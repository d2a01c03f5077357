// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/services"
)

// MockBackend is a test double for [services.Backend].
//
// Zero value behaves like a healthy backend with both sessions live and no
// playlists; fields override individual operations.
type MockBackend struct {
	LoginState    models.LoginState
	AuthURL       string
	LoginErr      error
	LogoutErr     error
	HealthErr     error
	Spotify       []services.PlaylistEntry
	SpotifyErr    error
	YouTube       []services.PlaylistEntry
	YouTubeErr    error
	Outcome       services.SubmitOutcome
	Statuses      []*services.TaskStatus
	StatusErr     error
	StatusCalls   int
	SubmitCalls   int
	SessionsCalls int
}

var _ services.Backend = (*MockBackend)(nil)

func (m *MockBackend) CheckSessions(ctx context.Context) models.LoginState {
	m.SessionsCalls++
	return m.LoginState
}

func (m *MockBackend) LoginURL(ctx context.Context, provider services.Provider) (string, error) {
	return m.AuthURL, m.LoginErr
}

func (m *MockBackend) Logout(ctx context.Context) error { return m.LogoutErr }

func (m *MockBackend) Health(ctx context.Context) error { return m.HealthErr }

func (m *MockBackend) SpotifyPlaylists(ctx context.Context) ([]services.PlaylistEntry, error) {
	return m.Spotify, m.SpotifyErr
}

func (m *MockBackend) YouTubePlaylists(ctx context.Context) ([]services.PlaylistEntry, error) {
	return m.YouTube, m.YouTubeErr
}

func (m *MockBackend) Submit(ctx context.Context, req models.TransferRequest) services.SubmitOutcome {
	m.SubmitCalls++
	return m.Outcome
}

// TaskStatus replays the scripted Statuses in order, repeating the last one
// once the script is exhausted.
func (m *MockBackend) TaskStatus(ctx context.Context, taskID string) (*services.TaskStatus, error) {
	m.StatusCalls++
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	if len(m.Statuses) == 0 {
		return &services.TaskStatus{State: services.StatePending}, nil
	}
	idx := m.StatusCalls - 1
	if idx >= len(m.Statuses) {
		idx = len(m.Statuses) - 1
	}
	return m.Statuses[idx], nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
