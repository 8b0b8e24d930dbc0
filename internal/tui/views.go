package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/astrogator/internal/tui/components"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	if m.SortModal.IsVisible() {
		return lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	screen := m.screen()

	var body string
	if p := m.Lifecycle.Popup(); p != nil {
		box := m.renderPopup()
		left, top := p.TopLeft()

		body = lipgloss.NewStyle().
			PaddingLeft(left).
			PaddingTop(top).
			Render(box)
		body = lipgloss.Place(screen.Width, screen.Height, lipgloss.Left, lipgloss.Top, body)
	} else {
		hint := styles.AccentStyle.Render(Keys.Toggle.Help().Key) +
			styles.DimStyle.Render(" open "+view.DisplayName)
		body = lipgloss.Place(screen.Width, screen.Height, lipgloss.Center, lipgloss.Center, hint)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// renderPopup renders the popup window with its border
func (m Model) renderPopup() string {
	skin := styles.ForSkin(m.Layout.Skin)

	lines := []string{
		skin.Title.Render(m.Layout.Title),
		skin.Subtitle.Render(m.Layout.Subtitle),
	}

	if m.Layout.Normal() {
		lines = append(lines, m.Header.View(skin))
		lines = append(lines, m.Layout.Rows...)
		if len(m.Layout.Rows) == 0 {
			lines = append(lines, styles.DimStyle.Render("No destinations match"))
		}

		switch {
		case m.FilterModal.IsVisible():
			lines = append(lines, m.FilterModal.View())
		case m.Layout.Filter != "":
			lines = append(lines, styles.FilterStyle.Render(
				fmt.Sprintf("/%s  %d of %d", m.Layout.Filter, m.Layout.Matched, m.Layout.Total)))
		}
	}

	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	width = innerWidth(width)

	if m.Layout.ShowSettings {
		layout := m.Layout
		layout.Geometry = m.liveGeometry()
		lines = append(lines, components.SettingsPanel(layout, skin, width))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	content = lipgloss.Place(width, innerHeight(lipgloss.Height(content)),
		lipgloss.Left, lipgloss.Top, content)

	return skin.Window.Render(content)
}

// renderFooter renders the status line and key hints
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := m.Help.View(Keys)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	full := m.Help
	full.ShowAll = true

	content := styles.ModalTitleStyle.Render(view.DisplayName+" keys") + "\n" +
		full.View(Keys) + "\n\n" +
		styles.DimStyle.Render("Press ? or esc to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}

// RenderPlain renders a layout as plain lines, without the popup window
func RenderPlain(layout view.Layout) string {
	lines := []string{layout.Title, layout.Subtitle}

	if layout.Normal() {
		header := components.NewHeaderBar()
		header.SetCells(layout.Headers, layout.Spacing, layout.Sort)
		lines = append(lines, header.View(styles.NormalSkin))
		lines = append(lines, layout.Rows...)
	}

	return strings.Join(lines, "\n") + "\n"
}
