package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/esosaoh/playlifts/internal/shared"
)

// ExtractSpotifyPlaylistID resolves a Spotify source reference to a playlist
// ID.
//
// Accepts either a bare playlist ID or an open.spotify.com URL with a
// /playlist/{id} path segment. Query strings (?si=...) are ignored.
func ExtractSpotifyPlaylistID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty Spotify playlist reference", shared.ErrInvalidInput)
	}

	if !strings.Contains(ref, "/") && !strings.Contains(ref, "http") {
		return ref, nil
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: invalid Spotify playlist URL", shared.ErrInvalidInput)
	}

	if parsed.Host != "" && parsed.Host != "open.spotify.com" {
		return "", fmt.Errorf("%w: expected an open.spotify.com URL", shared.ErrInvalidInput)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, part := range parts {
		if part == "playlist" && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}

	return "", fmt.Errorf("%w: no playlist ID in Spotify URL", shared.ErrInvalidInput)
}

// ValidateYouTubeURL checks that a YouTube Music source reference is a
// youtube.com URL carrying a playlist in its "list" query parameter.
//
// The URL itself is what the backend consumes, so the original reference is
// returned unchanged on success.
func ValidateYouTubeURL(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty YouTube playlist URL", shared.ErrInvalidInput)
	}

	parsed, err := url.Parse(ref)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: invalid YouTube playlist URL", shared.ErrInvalidInput)
	}

	if !strings.Contains(parsed.Host, "youtube.com") {
		return "", fmt.Errorf("%w: expected a youtube.com URL", shared.ErrInvalidInput)
	}

	if parsed.Query().Get("list") == "" {
		return "", fmt.Errorf("%w: no playlist ID found in URL", shared.ErrInvalidInput)
	}

	return ref, nil
}
