package main

import (
	"context"
	"fmt"

	"github.com/esosaoh/playlifts/internal/services"
	"github.com/esosaoh/playlifts/internal/shared"
	"github.com/urfave/cli/v3"
)

// Init creates a starter configuration file.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("Created %s\n", path)
	r.writePlain("Edit it to point at your transfer backend, then run 'playlifts auth login'.\n")
	return nil
}

// AuthCheck queries the combined-login endpoint and prints readiness.
//
// Never fails: a dead backend reads as logged out for both providers.
func (r *Runner) AuthCheck(ctx context.Context, cmd *cli.Command) error {
	state := r.backend.CheckSessions(ctx)
	r.saveSession()

	if cmd.Bool("json") {
		return r.writeJSON(map[string]bool{
			"spotify_logged_in": state.Spotify,
			"youtube_logged_in": state.YouTube,
		}, true)
	}

	r.writePlain("Spotify: %s\n", loginWord(state.Spotify))
	r.writePlain("YouTube: %s\n", loginWord(state.YouTube))

	if !state.BothLoggedIn() {
		r.writePlain("\nConnect the missing provider with 'playlifts auth login --provider <name>'.\n")
	}

	return nil
}

// AuthLogin fetches the provider's authorization URL and opens a browser.
//
// The OAuth exchange itself happens between the browser and the backend; the
// CLI only hands off the URL.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	provider, err := parseProvider(cmd.String("provider"))
	if err != nil {
		return err
	}

	authURL, err := r.backend.LoginURL(ctx, provider)
	if err != nil {
		return err
	}
	r.saveSession()

	if cmd.Bool("print-url") {
		r.writePlain("%s\n", authURL)
		return nil
	}

	r.logger.Info("opening browser", "provider", provider)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.writePlain("Open this URL to continue:\n%s\n", authURL)
		return nil
	}

	r.writePlain("Complete the login in your browser, then run 'playlifts auth check'.\n")
	return nil
}

// AuthLogout clears the backend session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.backend.Logout(ctx); err != nil {
		return err
	}

	if r.jar != nil {
		if err := r.jar.Clear(); err != nil {
			r.logger.Warn("failed to clear local session", "err", err)
		}
	}

	r.writePlain("Logged out.\n")
	return nil
}

// APIHealth checks backend liveness.
func (r *Runner) APIHealth(ctx context.Context, cmd *cli.Command) error {
	if err := r.backend.Health(ctx); err != nil {
		return err
	}
	r.writePlain("ok\n")
	return nil
}

func parseProvider(s string) (services.Provider, error) {
	switch s {
	case "spotify":
		return services.ProviderSpotify, nil
	case "youtube", "ytmusic":
		return services.ProviderYouTube, nil
	default:
		return "", fmt.Errorf("%w: invalid provider '%s' (must be 'spotify' or 'youtube')", shared.ErrInvalidArgument, s)
	}
}

func loginWord(loggedIn bool) string {
	if loggedIn {
		return "logged in"
	}
	return "logged out"
}
