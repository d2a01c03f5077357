package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/esosaoh/playlifts/internal/models"
	"github.com/esosaoh/playlifts/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TransferView ViewState = iota
	ResultView
	ErrorView
)

// Model represents the TUI application state for one transfer.
//
// Quitting mid-transfer cancels the context, which tears down the poll loop
// before the program exits.
type Model struct {
	ctx          context.Context
	cancel       context.CancelFunc
	view         ViewState
	engine       *tasks.TransferEngine
	request      models.TransferRequest
	width        int
	height       int
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	spin         spinner.Model
	bar          progress.Model
	resultList   list.Model
	result       *models.TransferResult
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates the TUI model for the given transfer request.
func NewModel(ctx context.Context, engine *tasks.TransferEngine, request models.TransferRequest) Model {
	ctx, cancel := context.WithCancel(ctx)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.title

	return Model{
		ctx:          ctx,
		cancel:       cancel,
		view:         TransferView,
		engine:       engine,
		request:      request,
		progressChan: make(chan tasks.ProgressUpdate, 50),
		spin:         spin,
		bar:          progress.New(progress.WithDefaultGradient()),
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init implements [tea.Model].
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startTransfer(), m.waitForProgress())
}

// startTransfer runs the engine in a command goroutine and reports the
// terminal outcome as a message.
func (m Model) startTransfer() tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Run(m.ctx, m.request, m.progressChan)
		return transferCompleteMsg(result, err)
	}
}

// waitForProgress relays one progress update from the engine channel.
func (m Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		update, ok := <-m.progressChan
		if !ok {
			return progressClosedMsg()
		}
		return progressUpdateMsg(update)
	}
}

// Update implements [tea.Model].
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.bar.Width = min(msg.Width-8, 60)
		if m.view == ResultView {
			m.resultList.SetSize(msg.Width-4, msg.Height-8)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd

	case Msg:
		return m.handleMsg(msg)
	}

	if m.view == ResultView {
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgProgressUpdate:
		update := msg.data.(tasks.ProgressUpdate)
		m.progress = update
		var barCmd tea.Cmd
		if update.Percent > 0 {
			barCmd = m.bar.SetPercent(update.Percent / 100)
		}
		return m, tea.Batch(m.waitForProgress(), barCmd)

	case MsgProgressClosed:
		return m, nil

	case MsgTransferComplete:
		data := msg.data.(struct {
			result *models.TransferResult
			err    error
		})
		close(m.progressChan)

		if data.err != nil {
			m.err = data.err
			m.view = ErrorView
			return m, nil
		}

		m.result = data.result
		m.resultList = list.New(outcomeItems(data.result), list.NewDefaultDelegate(), m.width-4, max(m.height-8, 10))
		m.resultList.Title = fmt.Sprintf("Transferred %d/%d tracks", data.result.SuccessCount, len(data.result.Tracks))
		m.resultList.SetShowHelp(false)
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

// View implements [tea.Model].
func (m Model) View() string {
	switch m.view {
	case TransferView:
		return m.transferView()
	case ResultView:
		return m.resultView()
	case ErrorView:
		return m.errorView()
	default:
		return ""
	}
}

func (m Model) transferView() string {
	title := styles.title.Render(fmt.Sprintf("Transferring to %s", m.request.Destination.Label()))

	message := m.progress.Message
	if message == "" {
		message = "Submitting transfer..."
	}

	body := fmt.Sprintf("%s\n\n%s %s\n", title, m.spin.View(), message)
	if m.progress.Total > 0 {
		body += fmt.Sprintf("\n%s %d/%d\n", m.bar.View(), m.progress.Current, m.progress.Total)
	}

	return body + "\n" + m.help.View(m.keys)
}

func (m Model) resultView() string {
	summary := styles.ok.Render(fmt.Sprintf("✓ %d transferred", m.result.SuccessCount))
	if failed := m.result.FailedCount(); failed > 0 {
		summary += "  " + styles.err.Render(fmt.Sprintf("✗ %d failed", failed))
	}

	return m.resultList.View() + "\n" + summary + "\n" + m.help.View(m.keys)
}

func (m Model) errorView() string {
	return styles.err.Render("Transfer failed") + "\n\n" + m.err.Error() + "\n\n" + m.help.View(m.keys)
}
