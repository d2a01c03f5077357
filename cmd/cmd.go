// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// initCommand creates a starter configuration file
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter config.toml",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path for the new configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Init,
	}
}

// authCommand handles session operations against the backend
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage provider sessions",
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Show per-provider login state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthCheck,
			},
			{
				Name:  "login",
				Usage: "Open the browser to log in with a provider",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "provider",
						Aliases:  []string{"p"},
						Usage:    "Provider to authenticate (spotify or youtube)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "print-url",
						Usage: "Print the authorization URL instead of opening a browser",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the backend session for both providers",
				Action: r.AuthLogout,
			},
		},
	}
}

// transferCommand handles transfer submission and task tracking
func transferCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "transfer",
		Usage: "Transfer playlists between providers",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Submit a transfer and follow it to completion",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Source playlist URL or ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "direction",
						Aliases: []string{"d"},
						Usage:   "Transfer direction (youtube-to-spotify or spotify-to-youtube)",
						Value:   "youtube-to-spotify",
					},
					&cli.StringFlag{
						Name:  "dest-id",
						Usage: "Destination playlist ID (omit for Liked Songs)",
					},
					&cli.StringFlag{
						Name:  "dest-name",
						Usage: "Destination playlist display name",
					},
					&cli.StringFlag{
						Name:  "report",
						Usage: "Write a per-track report to this path",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Report format (txt, csv, markdown)",
						Value: "txt",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output the reconciled result as JSON",
					},
				},
				Action: r.TransferRun,
			},
			{
				Name:  "status",
				Usage: "Print one status snapshot for a task",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "task-id",
						Usage:    "Task ID returned by a deferred submission",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TransferStatus,
			},
			{
				Name:  "watch",
				Usage: "Poll an existing task to a terminal state",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "task-id",
						Usage:    "Task ID returned by a deferred submission",
						Required: true,
					},
				},
				Action: r.TransferWatch,
			},
		},
	}
}

// spotifyCommand handles Spotify listing operations
func spotifyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "spotify",
		Aliases: []string{"spot"},
		Usage:   "Spotify operations",
		Commands: []*cli.Command{
			{
				Name:  "playlists",
				Usage: "List Spotify playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SpotifyPlaylists,
			},
		},
	}
}

// youtubeCommand handles YouTube listing operations
func youtubeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "youtube",
		Aliases: []string{"yt"},
		Usage:   "YouTube Music operations",
		Commands: []*cli.Command{
			{
				Name:  "playlists",
				Usage: "List YouTube playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.YouTubePlaylists,
			},
		},
	}
}

// apiCommand handles direct backend calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct backend calls",
		Commands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "Check backend liveness",
				Action: r.APIHealth,
			},
		},
	}
}
