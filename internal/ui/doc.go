// Package ui implements the interactive transfer view using bubbletea.
//
// The TUI drives one [tasks.TransferEngine] run: a spinner and progress bar
// while the transfer is submitted and polled, then a scrollable per-track
// outcome list once the result reconciles. Progress arrives over the
// engine's update channel, relayed into the Elm-style [Msg] union one event
// at a time.
//
// Quitting mid-transfer cancels the underlying context, which stops the
// poll loop and releases the task handle before the program exits.
package ui
