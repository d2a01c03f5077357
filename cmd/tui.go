package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/shared"
	"github.com/esosaoh/playlifts/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive transfer view.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	direction, ok := models.ParseDirection(cmd.String("direction"))
	if !ok {
		return fmt.Errorf("%w: invalid direction '%s'", shared.ErrInvalidFlag, cmd.String("direction"))
	}

	req := models.TransferRequest{
		SourceReference: cmd.String("source"),
		Direction:       direction,
		Destination: models.Destination{
			ID:          cmd.String("dest-id"),
			DisplayName: cmd.String("dest-name"),
		},
	}

	model := ui.NewModel(ctx, r.engine, req)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	r.saveSession()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// tuiCommand launches the interactive transfer view
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Interactive transfer view",
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
		},
		Action: r.TUI,
	}
}
