package main

import (
	"context"
	"fmt"

	"github.com/esosaoh/playlifts/internal/formatter"
	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/shared"
	"github.com/esosaoh/playlifts/internal/tasks"
	"github.com/urfave/cli/v3"
)

// TransferRun submits a transfer and follows it to a reconciled result.
func (r *Runner) TransferRun(ctx context.Context, cmd *cli.Command) error {
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

	r.logger.Info("starting transfer", "direction", direction, "source", req.SourceReference, "dest", req.Destination.Label())
	r.writePlain("Starting playlist transfer...\n")
	r.writePlain("Source: %s\n", req.SourceReference)
	r.writePlain("Destination: %s\n\n", req.Destination.Label())

	progressCh := make(chan tasks.ProgressUpdate, 50)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for update := range progressCh {
			switch update.Phase {
			case tasks.SubmitRequest, tasks.TaskQueued:
				r.writePlain("📤 %s\n", update.Message)
			case tasks.TaskPolling:
				if update.Total > 0 {
					r.writePlain("   [%d/%d] %s\n", update.Current, update.Total, update.Message)
				} else {
					r.writePlain("   %s\n", update.Message)
				}
			case tasks.ReconcileResult:
				r.writePlain("\n📝 %s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Run(ctx, req, progressCh)
	close(progressCh)
	<-drained
	r.saveSession()

	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlain("\n")
	r.writePlainHeader("Transfer Complete!")
	r.writePlain("Destination: %s\n", req.Destination.Label())
	r.writePlain("Transferred: %d/%d tracks\n", result.SuccessCount, len(result.Tracks))

	if result.FailedCount() > 0 {
		r.writePlain("\nFailed to transfer %d tracks:\n", result.FailedCount())
		for _, outcome := range result.Tracks {
			if !outcome.OK {
				reason := outcome.Reason
				if reason == "" {
					reason = "unknown error"
				}
				r.writePlain("  - %s - %s: %s\n", outcome.Artist, outcome.Title, reason)
			}
		}
	}

	if path := cmd.String("report"); path != "" {
		if err := formatter.WriteReport(result, req.Destination, cmd.String("format"), path); err != nil {
			return err
		}
		r.writePlain("\nReport written to %s\n", path)
	}

	return nil
}

// TransferStatus prints one status snapshot for a deferred task.
func (r *Runner) TransferStatus(ctx context.Context, cmd *cli.Command) error {
	taskID := cmd.String("task-id")

	status, err := r.backend.TaskStatus(ctx, taskID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlain("State: %s\n", status.State)
	if status.Total > 0 {
		r.writePlain("Progress: %d/%d (%.0f%%)\n", status.Current, status.Total, status.Progress)
	}
	if status.Status != "" {
		r.writePlain("Status: %s\n", status.Status)
	}
	if status.Error != "" {
		r.writePlain("Error: %s\n", status.Error)
	}

	return nil
}

// TransferWatch polls an existing task to a terminal state and prints the
// reconciled result.
func (r *Runner) TransferWatch(ctx context.Context, cmd *cli.Command) error {
	handle := models.JobHandle{TaskID: cmd.String("task-id")}

	r.writePlain("Watching task %s...\n", handle.TaskID)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for update := range progressCh {
			r.writePlain("   %s\n", update.Message)
		}
	}()

	poller := tasks.NewPoller(r.backend)
	res := poller.Poll(ctx, handle, progressCh)
	close(progressCh)
	<-drained

	switch res.State {
	case models.JobSucceeded:
		result := tasks.Reconcile(res.Payload)
		r.writePlain("\n")
		r.writePlainHeader("Transfer Complete!")
		r.writePlain("%s", formatter.ResultToText(&result))
		return nil
	case models.JobFailed:
		return fmt.Errorf("%w: %s", shared.ErrTransferFailed, res.Message)
	case models.JobTimedOut:
		return fmt.Errorf("%w: %s", shared.ErrTimeout, res.Message)
	case models.JobCancelled:
		return ctx.Err()
	default:
		return fmt.Errorf("%w: unexpected poll state %s", shared.ErrAPIRequest, res.State)
	}
}
