package tasks

import (
	"fmt"

	"github.com/esosaoh/playlifts/internal/models"
)

// ProgressUpdate represents a progress event during a transfer.
//
// Used to send real-time updates to the CLI or TUI layer for display.
type ProgressUpdate struct {
	Phase   Phase   // Operation phase
	State   models.JobState
	Current int     // Tracks processed so far, from the PROGRESS payload
	Total   int     // Total tracks, from the PROGRESS payload
	Percent float64 // Reported progress percentage
	Message string  // Human-readable message for display
	Data    any     // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	SubmitRequest Phase = iota
	TaskQueued
	TaskPolling
	ReconcileResult
)

func (p Phase) String() string {
	switch p {
	case SubmitRequest:
		return "submit_request"
	case TaskQueued:
		return "task_queued"
	case TaskPolling:
		return "task_polling"
	case ReconcileResult:
		return "reconcile_result"
	default:
		return ""
	}
}

func submitUpdate(req models.TransferRequest) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SubmitRequest,
		Message: fmt.Sprintf("Submitting %s transfer...", req.Direction),
	}
}

func queuedUpdate(handle models.JobHandle) ProgressUpdate {
	return ProgressUpdate{
		Phase:   TaskQueued,
		State:   models.JobPending,
		Message: fmt.Sprintf("Transfer queued (task %s)", handle.TaskID),
		Data:    handle,
	}
}

func pendingUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   TaskPolling,
		State:   models.JobPending,
		Message: "Waiting for the transfer to start...",
	}
}

func pollingUpdate(current, total int, percent float64, status string) ProgressUpdate {
	if status == "" {
		status = "Transfer in progress..."
	}
	return ProgressUpdate{
		Phase:   TaskPolling,
		State:   models.JobInProgress,
		Current: current,
		Total:   total,
		Percent: percent,
		Message: status,
	}
}

func reconciledUpdate(result *models.TransferResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ReconcileResult,
		State:   models.JobSucceeded,
		Percent: 100,
		Message: fmt.Sprintf("Transferred %d/%d tracks", result.SuccessCount, len(result.Tracks)),
		Data:    result,
	}
}
