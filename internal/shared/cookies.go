package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sync"
	"time"
)

// storedCookie is the on-disk representation of one session cookie.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
	Secure  bool      `json:"secure,omitempty"`
}

// SessionJar is an [http.CookieJar] that persists the backend's session
// cookies to a JSON file so logins survive between CLI invocations.
//
// Only cookies for the configured API origin are stored; the jar otherwise
// delegates to a standard [cookiejar.Jar].
type SessionJar struct {
	mu     sync.Mutex
	jar    *cookiejar.Jar
	path   string
	origin *url.URL
}

// NewSessionJar creates a SessionJar backed by the given file path, loading
// any previously saved cookies for the API origin.
func NewSessionJar(path string, origin *url.URL) (*SessionJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	s := &SessionJar{jar: jar, path: path, origin: origin}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetCookies implements [http.CookieJar].
func (s *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar.SetCookies(u, cookies)
}

// Cookies implements [http.CookieJar].
func (s *SessionJar) Cookies(u *url.URL) []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jar.Cookies(u)
}

// Save writes the cookies for the API origin to disk.
func (s *SessionJar) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies := s.jar.Cookies(s.origin)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{
			Name:   c.Name,
			Value:  c.Value,
			Path:   c.Path,
			Domain: c.Domain,
			Secure: c.Secure,
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cookies: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes all persisted cookies and deletes the session file.
func (s *SessionJar) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("failed to reset cookie jar: %w", err)
	}
	s.jar = jar

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (s *SessionJar) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		// A corrupt session file is equivalent to being logged out.
		return nil
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
			Secure:  c.Secure,
		})
	}
	s.jar.SetCookies(s.origin, cookies)
	return nil
}
