package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

const sortModalWidth = 24

// SortOption is one sortable column offered by the sort modal
type SortOption struct {
	Key   domain.SortKey
	Label string
}

// SortOptions returns the sortable cells of a header row, without indicators
func SortOptions(cells []view.HeaderCell, state domain.SortState) []SortOption {
	var options []SortOption
	for _, cell := range cells {
		if !cell.Sortable {
			continue
		}
		options = append(options, SortOption{
			Key:   cell.Key,
			Label: strings.TrimSuffix(cell.Text, view.SortIndicator(cell.Key, state)),
		})
	}
	return options
}

// SortModal is a small popup for choosing the sort column
type SortModal struct {
	visible bool
	options []SortOption
	cursor  int
	active  domain.SortState
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{}
}

// Show displays the modal with the given options and current sort state
func (m *SortModal) Show(options []SortOption, active domain.SortState) {
	m.visible = true
	m.options = options
	m.active = active
	// Position cursor on the active column
	m.cursor = 0
	for i, opt := range options {
		if opt.Key == active.Key {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, chosen).
// If chosen is non-nil, the user confirmed a column.
func (m *SortModal) HandleKey(msg tea.KeyMsg) (handled bool, chosen *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch {
	case key.Matches(msg, SortModalKeys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case key.Matches(msg, SortModalKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, SortModalKeys.Enter):
		m.visible = false
		if len(m.options) == 0 {
			return true, nil
		}
		k := m.options[m.cursor].Key
		return true, &k
	case key.Matches(msg, SortModalKeys.Escape):
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		isActive := opt.Key == m.active.Key

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}
		text := prefix + opt.Label + view.SortIndicator(opt.Key, m.active)
		text = styles.Fit(text, sortModalWidth, lipgloss.Left)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		case isActive:
			lines = append(lines, styles.AccentStyle.Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.LightGray).
				Render(text))
		}
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
