// Package tui implements the interactive watch view for lint sessions.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/conspect/conspect/internal/core/domain"
	"github.com/conspect/conspect/internal/core/ports"
)

// historySize bounds the recent-event pane. Older events rotate out.
const historySize = 8

// MsgRecipeChecked reports a completed lint pass for the watched recipe.
type MsgRecipeChecked struct {
	Event ports.WatchEvent
	Err   error
}

// MsgWatchStopped tells the model the watch session ended.
type MsgWatchStopped struct{}

// checkRecord is one row of the event history pane.
type checkRecord struct {
	at        time.Time
	operation ports.WatchOp
	err       error
}

// Model is the bubbletea model for a watch session.
type Model struct {
	path    string
	history *domain.Ring[checkRecord]
	lastErr error
	checks  int
	width   int
	started time.Time
}

// NewModel creates a watch model for the given recipe path.
func NewModel(path string) *Model {
	// Capacity is static and positive, the constructor cannot fail.
	history, err := domain.NewRing[checkRecord](historySize, domain.OverwriteOldest)
	if err != nil {
		panic(fmt.Sprintf("tui: history ring: %v", err))
	}

	return &Model{
		path:    path,
		history: history,
		started: time.Now(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case MsgRecipeChecked:
		m.checks++
		m.lastErr = msg.Err
		// OverwriteOldest never fails on a non-zero capacity ring.
		_ = m.history.PushBack(checkRecord{
			at:        msg.Event.At,
			operation: msg.Event.Operation,
			err:       msg.Err,
		})
		return m, nil

	case MsgWatchStopped:
		return m, tea.Quit
	}

	return m, nil
}
