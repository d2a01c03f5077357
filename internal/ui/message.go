package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/tasks"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var _ tea.Msg = Msg{}

const (
	MsgProgressUpdate MsgKind = iota
	MsgProgressClosed
	MsgTransferComplete
)

// progressUpdateMsg is the constructor for [MsgProgressUpdate]
func progressUpdateMsg(update tasks.ProgressUpdate) Msg {
	return Msg{kind: MsgProgressUpdate, data: update}
}

// progressClosedMsg is the constructor for [MsgProgressClosed]
func progressClosedMsg() Msg {
	return Msg{kind: MsgProgressClosed}
}

// transferCompleteMsg is the constructor for [MsgTransferComplete]
func transferCompleteMsg(result *models.TransferResult, err error) Msg {
	return Msg{
		kind: MsgTransferComplete,
		data: struct {
			result *models.TransferResult
			err    error
		}{result, err},
	}
}
