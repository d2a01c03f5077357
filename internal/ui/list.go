package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/esosaoh/playlifts/internal/models"
)

var _ list.Item = outcomeItem{}

// outcomeItem wraps [models.TrackOutcome] to implement [list.Item].
type outcomeItem struct {
	outcome models.TrackOutcome
}

func (i outcomeItem) FilterValue() string { return i.outcome.Title }

func (i outcomeItem) Title() string {
	if i.outcome.OK {
		return styles.ok.Render("✓ ") + i.outcome.Title
	}
	return styles.err.Render("✗ ") + i.outcome.Title
}

func (i outcomeItem) Description() string {
	if i.outcome.OK {
		return i.outcome.Artist
	}
	reason := i.outcome.Reason
	if reason == "" {
		reason = "unknown error"
	}
	return fmt.Sprintf("%s • %s", i.outcome.Artist, reason)
}

func outcomeItems(result *models.TransferResult) []list.Item {
	items := make([]list.Item, len(result.Tracks))
	for i, outcome := range result.Tracks {
		items[i] = outcomeItem{outcome: outcome}
	}
	return items
}
