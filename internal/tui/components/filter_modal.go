package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/astrogator/internal/tui/styles"
)

// FilterModal is a one-line text input that narrows the transfer rows
type FilterModal struct {
	visible bool
	input   textinput.Model
}

// NewFilterModal creates a new filter modal
func NewFilterModal() FilterModal {
	ti := textinput.New()
	ti.Placeholder = "destination..."
	ti.CharLimit = 32
	ti.Width = 24
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return FilterModal{
		input: ti,
	}
}

// Show displays the input, keeping the current query
func (m *FilterModal) Show(query string) {
	m.visible = true
	m.input.SetValue(query)
	m.input.CursorEnd()
	m.input.Focus()
}

// Hide dismisses the input
func (m *FilterModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the input is shown
func (m FilterModal) IsVisible() bool {
	return m.visible
}

// Value returns the current query
func (m FilterModal) Value() string {
	return m.input.Value()
}

// SetValue replaces the query without showing the input
func (m *FilterModal) SetValue(query string) {
	m.input.SetValue(query)
}

// Clear empties the query
func (m *FilterModal) Clear() {
	m.input.SetValue("")
}

// Update handles input events, returns (modal, cmd, changed).
// changed is true whenever the query differs from before the event.
func (m FilterModal) Update(msg tea.Msg) (FilterModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	before := m.input.Value()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, FilterModalKeys.Enter):
			m.Hide()
			return m, nil, false
		case key.Matches(keyMsg, FilterModalKeys.Escape):
			m.input.SetValue("")
			m.Hide()
			return m, nil, before != ""
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, m.input.Value() != before
}

// View renders the input line
func (m FilterModal) View() string {
	if !m.visible {
		return ""
	}
	return m.input.View()
}
