package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/components"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

const (
	// TickInterval is how often the burn countdowns are refreshed
	TickInterval = time.Second

	// Vertical layout: single footer line
	ChromeHeight = 1
)

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Collaborators
	Source    domain.ModelSource
	Settings  *view.Settings
	Lifecycle *view.Lifecycle
	Builder   *view.Builder

	// Current build. Replaced wholesale on every RebuildMsg.
	Layout view.Layout

	// UI Components
	Header      components.HeaderBar
	SortModal   components.SortModal
	FilterModal components.FilterModal
	Help        help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	ShowHelp    bool
	Closed      bool // The user dismissed the popup

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(
	source domain.ModelSource,
	settings *view.Settings,
	spacing int,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	renderer := components.NewTransferRow(styles.NormalSkin)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		Source:      source,
		Settings:    settings,
		Lifecycle:   view.NewLifecycle(settings),
		Builder:     view.NewBuilder(settings, renderer, spacing, logger),
		Header:      components.NewHeaderBar(),
		SortModal:   components.NewSortModal(),
		FilterModal: components.NewFilterModal(),
		Help:        h,
		logger:      logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		RebuildCmd(),
		TickCmd(TickInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if nm, ok := next.(Model); ok {
		nm.measurePopup()
		next = nm
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Help.Width = msg.Width
		if p := m.Lifecycle.Popup(); p != nil {
			p.SetScreen(m.screen())
			return m, nil
		}
		var cmd tea.Cmd
		if !m.Closed {
			cmd = m.showPopup()
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case RebuildMsg:
		m.rebuild()
		return m, nil

	case TickMsg:
		m.rebuild()
		return m, TickCmd(TickInterval)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// rebuild replaces the layout with a fresh build of the current model
func (m *Model) rebuild() {
	m.Layout = m.Builder.Build(m.Source.Model(), m.FilterModal.Value())
	m.Header.SetCells(m.Layout.Headers, m.Layout.Spacing, m.Layout.Sort)
}

// screen is the area the popup may occupy
func (m Model) screen() view.Screen {
	return view.Screen{Width: m.Width, Height: max(m.Height-ChromeHeight, 0)}
}

// measurePopup records the rendered popup size on the handle, which keeps
// the popup on screen. View only reads it.
func (m Model) measurePopup() {
	p := m.Lifecycle.Popup()
	if p == nil || !m.Ready {
		return
	}
	box := m.renderPopup()
	p.SetSize(lipgloss.Width(box), lipgloss.Height(box))
}

// showPopup opens the popup at its persisted position
func (m *Model) showPopup() tea.Cmd {
	m.Closed = false
	if _, err := m.Lifecycle.Show(m.screen()); err != nil {
		m.logger.Warn("failed to show popup", "error", err)
		return StatusCmd("Cannot show "+view.DisplayName+": "+err.Error(), true)
	}
	return nil
}

// dismissPopup closes the popup and persists where it was
func (m *Model) dismissPopup() {
	m.Lifecycle.Dismiss()
	m.Header.Blur()
	m.SortModal.Hide()
	m.FilterModal.Hide()
	m.Closed = true
}

// clickColumn applies a header click and requests a rebuild
func (m *Model) clickColumn(k domain.SortKey) tea.Cmd {
	state := m.Settings.ClickColumn(k)
	m.logger.Debug("sort changed", "key", state.Key.String(), "descending", state.Descending)

	status := "Sorted by " + components.SortLabel(state.Key) + view.SortIndicator(state.Key, state)
	return tea.Batch(RebuildCmd(), StatusCmd(status, false))
}

// liveGeometry is the popup position as it would be persisted right now
func (m Model) liveGeometry() domain.WindowGeometry {
	p := m.Lifecycle.Popup()
	if p == nil {
		return m.Layout.Geometry
	}
	screen := p.Screen()
	return domain.WindowGeometry{
		X: view.ToFraction(p.X, screen.Width),
		Y: view.ToFraction(p.Y, screen.Height),
	}
}
