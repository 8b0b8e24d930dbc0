package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/astrogator/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		m.Lifecycle.Dismiss()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Toggle):
		if m.Lifecycle.Visible() {
			m.dismissPopup()
			return m, nil
		}
		cmd := m.showPopup()
		return m, tea.Batch(cmd, RebuildCmd())
	}

	if !m.Lifecycle.Visible() {
		return m, nil
	}

	// Popup keys
	switch {
	case key.Matches(msg, Keys.Escape):
		if m.FilterModal.Value() != "" {
			m.FilterModal.Clear()
			return m, RebuildCmd()
		}
		if m.Header.Focused() {
			m.Header.Blur()
			return m, nil
		}
		m.dismissPopup()
		return m, nil

	case key.Matches(msg, Keys.NextColumn):
		if m.Header.Focused() {
			m.Header.Next()
		}
		m.Header.Focus()
		return m, nil

	case key.Matches(msg, Keys.PrevColumn):
		if m.Header.Focused() {
			m.Header.Prev()
		}
		m.Header.Focus()
		return m, nil

	case key.Matches(msg, Keys.Sort):
		if !m.Layout.Normal() {
			return m, nil
		}
		if !m.Header.Focused() {
			m.Header.Focus()
			return m, nil
		}
		if cell, ok := m.Header.Selected(); ok {
			return m, m.clickColumn(cell.Key)
		}
		return m, nil

	case key.Matches(msg, Keys.SortMenu):
		if m.Layout.Normal() {
			m.SortModal.Show(components.SortOptions(m.Header.Cells(), m.Layout.Sort), m.Layout.Sort)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		if m.Layout.Normal() {
			m.FilterModal.Show(m.FilterModal.Value())
		}
		return m, nil

	case key.Matches(msg, Keys.Settings):
		m.Settings.ToggleShowSettings()
		return m, RebuildCmd()

	case key.Matches(msg, Keys.MoveUp):
		m.Lifecycle.Popup().MoveBy(0, -1)
	case key.Matches(msg, Keys.MoveDown):
		m.Lifecycle.Popup().MoveBy(0, 1)
	case key.Matches(msg, Keys.MoveLeft):
		m.Lifecycle.Popup().MoveBy(-1, 0)
	case key.Matches(msg, Keys.MoveRight):
		m.Lifecycle.Popup().MoveBy(1, 0)
	}

	return m, nil
}

// routeToModal sends the key to a visible modal. Returns handled=false when
// no modal is active.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.FilterModal.IsVisible() {
		var cmd tea.Cmd
		var changed bool
		m.FilterModal, cmd, changed = m.FilterModal.Update(msg)
		if changed {
			return true, m, tea.Batch(cmd, RebuildCmd())
		}
		return true, m, cmd
	}

	if m.SortModal.IsVisible() {
		handled, chosen := m.SortModal.HandleKey(msg)
		if handled {
			if chosen != nil {
				return true, m, m.clickColumn(*chosen)
			}
			return true, m, nil
		}
	}

	return false, m, nil
}

// handleMouseMsg turns left clicks on the header row into column clicks
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.SortModal.IsVisible() || m.FilterModal.IsVisible() || m.ShowHelp {
		return m, nil
	}

	idx, ok := m.headerAt(msg.X, msg.Y)
	if !ok || !m.Header.Select(idx) {
		return m, nil
	}
	cell, _ := m.Header.Selected()
	return m, m.clickColumn(cell.Key)
}
