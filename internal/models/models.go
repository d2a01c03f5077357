// package models defines the data model for the playlist transfer client
package models

// Direction identifies which provider a transfer reads from.
//
// The backend exposes one submission endpoint per direction and the two
// directions accept different source reference shapes (a YouTube Music
// playlist URL vs a Spotify playlist URL or bare ID).
type Direction int

const (
	YouTubeToSpotify Direction = iota
	SpotifyToYouTube
)

func (d Direction) String() string {
	switch d {
	case YouTubeToSpotify:
		return "youtube-to-spotify"
	case SpotifyToYouTube:
		return "spotify-to-youtube"
	default:
		return "unknown"
	}
}

// ParseDirection converts a CLI flag value into a [Direction].
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "youtube-to-spotify", "yt2spot", "youtube":
		return YouTubeToSpotify, true
	case "spotify-to-youtube", "spot2yt", "spotify":
		return SpotifyToYouTube, true
	default:
		return YouTubeToSpotify, false
	}
}

// Destination is the target location for transferred tracks.
//
// The zero value means the provider's "Liked Songs" collection; a non-empty
// ID selects a named playlist.
type Destination struct {
	ID          string
	DisplayName string
	ImageURL    string
}

// LikedSongs returns the default destination.
func LikedSongs() Destination { return Destination{} }

func (d Destination) IsLikedSongs() bool { return d.ID == "" }

// Label returns a display name that is always renderable.
func (d Destination) Label() string {
	if d.ID == "" {
		return "Liked Songs"
	}
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return "Selected Playlist"
}

// TransferRequest describes one transfer submission.
type TransferRequest struct {
	SourceReference string // playlist URL or ID depending on Direction
	Destination     Destination
	Direction       Direction
}

// JobHandle identifies a server-side asynchronous transfer task.
//
// Returned only by a deferred submission and consumed only by the poll loop,
// which owns it until a terminal state or cancellation.
type JobHandle struct {
	TaskID string
}

// JobState is the client-side view of an in-flight transfer.
//
// Pending and InProgress share identical polling behavior and are
// distinguished only for display. TimedOut and Cancelled originate on the
// client, never from the backend.
type JobState int

const (
	JobPending JobState = iota
	JobInProgress
	JobSucceeded
	JobFailed
	JobTimedOut
	JobCancelled
)

func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobInProgress:
		return "in_progress"
	case JobSucceeded:
		return "succeeded"
	case JobFailed:
		return "failed"
	case JobTimedOut:
		return "timed_out"
	case JobCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can occur from s.
func (s JobState) Terminal() bool {
	switch s {
	case JobSucceeded, JobFailed, JobTimedOut, JobCancelled:
		return true
	default:
		return false
	}
}

// TrackOutcome is the per-track result of a transfer.
type TrackOutcome struct {
	Title      string
	Artist     string
	ArtworkURL string
	OK         bool
	Reason     string // failure reason, empty for successes
}

// TransferResult is an ordered sequence of per-track outcomes, successes
// first then failures, each sublist preserving the order reported by the
// backend.
type TransferResult struct {
	Tracks       []TrackOutcome
	SuccessCount int
}

func (r TransferResult) FailedCount() int {
	return len(r.Tracks) - r.SuccessCount
}

// LoginState is the per-provider session readiness reported by the backend.
//
// Written once at bootstrap before any reader consults it; there is no
// background refresh. A missing provider gates only the features that need
// it, so no combined readiness field exists.
type LoginState struct {
	Spotify bool
	YouTube bool
}

// BothLoggedIn reports full readiness for either transfer direction.
func (s LoginState) BothLoggedIn() bool { return s.Spotify && s.YouTube }
