package tui_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conspect/conspect/internal/adapters/tui"
	"github.com/conspect/conspect/internal/core/ports"
)

func checkedMsg(err error) tui.MsgRecipeChecked {
	return tui.MsgRecipeChecked{
		Event: ports.WatchEvent{
			Path:      "/work/recipe.yaml",
			Operation: ports.OpWrite,
			At:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Err: err,
	}
}

func TestModel_InitialView(t *testing.T) {
	m := tui.NewModel("/work/recipe.yaml")

	view := m.View()
	assert.Contains(t, view, "conspect watch")
	assert.Contains(t, view, "/work/recipe.yaml")
	assert.Contains(t, view, "waiting for changes")
}

func TestModel_SuccessfulCheck(t *testing.T) {
	m := tui.NewModel("/work/recipe.yaml")

	updated, cmd := m.Update(checkedMsg(nil))
	assert.Nil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "valid (1 checks)")
	assert.Contains(t, view, "Recent changes")
	assert.Contains(t, view, "09:30:00")
	assert.Contains(t, view, "write")
}

func TestModel_FailedCheck(t *testing.T) {
	m := tui.NewModel("/work/recipe.yaml")

	updated, _ := m.Update(checkedMsg(errors.New("duplicate requirement")))

	view := updated.View()
	assert.Contains(t, view, "invalid: duplicate requirement")
}

func TestModel_HistoryRotates(t *testing.T) {
	m := tui.NewModel("/work/recipe.yaml")

	var model tea.Model = m
	for i := range 12 {
		model, _ = model.Update(tui.MsgRecipeChecked{
			Event: ports.WatchEvent{
				Path:      "/work/recipe.yaml",
				Operation: ports.OpWrite,
				At:        time.Date(2026, 3, 14, 9, 0, i, 0, time.UTC),
			},
		})
	}

	view := model.View()
	// The first four timestamps rotated out of the bounded history.
	for i := range 4 {
		assert.NotContains(t, view, fmt.Sprintf("09:00:0%d ", i))
	}
	assert.Contains(t, view, "09:00:11")
	assert.Contains(t, view, "valid (12 checks)")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := tui.NewModel("/work/recipe.yaml")

			var msg tea.KeyMsg
			switch key {
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_WatchStoppedQuits(t *testing.T) {
	m := tui.NewModel("/work/recipe.yaml")

	_, cmd := m.Update(tui.MsgWatchStopped{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
