package main

import (
	"context"

	"github.com/esosaoh/playlifts/internal/services"
	"github.com/urfave/cli/v3"
)

// SpotifyPlaylists lists the authenticated user's Spotify playlists.
func (r *Runner) SpotifyPlaylists(ctx context.Context, cmd *cli.Command) error {
	playlists, err := r.backend.SpotifyPlaylists(ctx)
	if err != nil {
		return err
	}
	r.saveSession()

	return r.writePlaylists(playlists, cmd.Bool("json"), true)
}

// YouTubePlaylists lists the authenticated user's YouTube playlists.
func (r *Runner) YouTubePlaylists(ctx context.Context, cmd *cli.Command) error {
	playlists, err := r.backend.YouTubePlaylists(ctx)
	if err != nil {
		return err
	}
	r.saveSession()

	return r.writePlaylists(playlists, cmd.Bool("json"), false)
}

func (r *Runner) writePlaylists(playlists []services.PlaylistEntry, asJSON, withCounts bool) error {
	if asJSON {
		return r.writeJSON(playlists, true)
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists found.\n")
		return nil
	}

	for i, pl := range playlists {
		if withCounts {
			r.writePlain("%d. %s (%d tracks) [%s]\n", i+1, pl.Name, pl.TrackCount, pl.ID)
		} else {
			r.writePlain("%d. %s [%s]\n", i+1, pl.Name, pl.ID)
		}
	}

	return nil
}
