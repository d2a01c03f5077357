package tasks

import (
	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/services"
)

// Reconcile normalizes a transfer result payload into one ordered outcome
// list: successes first, then failures, each sublist preserving the order
// the backend reported.
//
// Pure and total: a nil or malformed payload reconciles to an empty result
// rather than an error. SuccessCount is recomputed from the success sublist
// instead of trusting the server-side count field, so the two can never
// disagree in what the UI shows.
func Reconcile(payload *services.TransferPayload) models.TransferResult {
	if payload == nil {
		return models.TransferResult{}
	}

	successes := payload.Success.Entries()
	failures := payload.Failed.Entries()

	tracks := make([]models.TrackOutcome, 0, len(successes)+len(failures))
	for _, entry := range successes {
		tracks = append(tracks, models.TrackOutcome{
			Title:      entry.Track,
			Artist:     entry.Artist,
			ArtworkURL: entry.ArtworkURL,
			OK:         true,
		})
	}
	for _, entry := range failures {
		tracks = append(tracks, models.TrackOutcome{
			Title:  entry.Track,
			Artist: entry.Artist,
			OK:     false,
			Reason: entry.Reason,
		})
	}

	return models.TransferResult{
		Tracks:       tracks,
		SuccessCount: len(successes),
	}
}
