package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerCells(state domain.SortState) []view.HeaderCell {
	ctx := view.RuntimeContext{HasActiveVessel: true, ColumnSpacing: 1}
	return view.BuildHeaders(view.Columns, ctx, state)
}

func TestHeaderBarCursorSkipsStaticCells(t *testing.T) {
	h := NewHeaderBar()
	h.SetCells(headerCells(domain.DefaultSortState()), 1, domain.DefaultSortState())

	var keys []domain.SortKey
	for range 4 {
		cell, ok := h.Selected()
		require.True(t, ok)
		keys = append(keys, cell.Key)
		h.Next()
	}
	assert.Equal(t, []domain.SortKey{
		domain.SortPosition, domain.SortName, domain.SortTime, domain.SortDeltaV,
	}, keys)

	// Next from the last sortable cell wraps to the first
	cell, _ := h.Selected()
	assert.Equal(t, domain.SortPosition, cell.Key)

	// And Prev from the first wraps to the last
	h.Prev()
	cell, _ = h.Selected()
	assert.Equal(t, domain.SortDeltaV, cell.Key)
}

func TestHeaderBarKeepsCursorAcrossRebuild(t *testing.T) {
	state := domain.DefaultSortState()
	h := NewHeaderBar()
	h.SetCells(headerCells(state), 1, state)
	h.Next()
	h.Next()

	state = domain.SortState{Key: domain.SortTime, Descending: true}
	h.SetCells(headerCells(state), 1, state)

	cell, ok := h.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.SortTime, cell.Key)
	assert.Equal(t, "Time Till Burn"+view.IndicatorDescending, cell.Text)
}

func TestHeaderBarEmpty(t *testing.T) {
	h := NewHeaderBar()
	h.Next()
	_, ok := h.Selected()
	assert.False(t, ok)
	assert.Equal(t, "", h.View(styles.NormalSkin))
}

func TestHeaderBarSelect(t *testing.T) {
	h := NewHeaderBar()
	cells := headerCells(domain.DefaultSortState())
	h.SetCells(cells, 1, domain.DefaultSortState())

	assert.False(t, h.Select(len(cells)-1), "vessel columns are not sortable")
	assert.True(t, h.Select(3))
	cell, _ := h.Selected()
	assert.Equal(t, domain.SortDeltaV, cell.Key)
}

func TestHeaderBarViewWidth(t *testing.T) {
	state := domain.SortState{Key: domain.SortName}
	cells := headerCells(state)
	h := NewHeaderBar()
	h.SetCells(cells, 1, state)
	h.Focus()

	out := ansi.Strip(h.View(styles.NormalSkin))
	width := len(cells) - 1
	for _, c := range cells {
		width += c.Width
	}
	assert.Equal(t, width, ansi.StringWidth(out))
	assert.Contains(t, out, "Transfer"+view.IndicatorAscending)
}

func TestSortModal(t *testing.T) {
	state := domain.SortState{Key: domain.SortTime}
	options := SortOptions(headerCells(state), state)
	require.Len(t, options, 4)
	assert.Equal(t, "Time Till Burn", options[2].Label)

	m := NewSortModal()
	handled, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, handled, "hidden modal ignores keys")

	m.Show(options, state)
	assert.True(t, m.IsVisible())
	assert.Contains(t, ansi.Strip(m.View()), "✓ Time Till Burn ↑")

	handled, chosen := m.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, handled)
	assert.Nil(t, chosen)

	handled, chosen = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	require.NotNil(t, chosen)
	assert.Equal(t, domain.SortDeltaV, *chosen)
	assert.False(t, m.IsVisible())
}

func TestSortModalEscape(t *testing.T) {
	state := domain.DefaultSortState()
	m := NewSortModal()
	m.Show(SortOptions(headerCells(state), state), state)

	handled, chosen := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.Nil(t, chosen)
	assert.False(t, m.IsVisible())
}

func TestFilterModal(t *testing.T) {
	m := NewFilterModal()
	m.Show("")

	var changed bool
	m, _, changed = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("du")})
	assert.True(t, changed)
	assert.Equal(t, "du", m.Value())

	m, _, changed = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, changed)
	assert.False(t, m.IsVisible())
	assert.Equal(t, "du", m.Value(), "enter keeps the query")

	m.Show(m.Value())
	m, _, changed = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, changed)
	assert.Equal(t, "", m.Value())
}

func TestSettingsPanel(t *testing.T) {
	layout := view.Layout{
		Sort:     domain.SortState{Key: domain.SortDeltaV, Descending: true},
		Geometry: domain.WindowGeometry{X: 0.25, Y: 0.5},
		Spacing:  1,
	}
	out := ansi.Strip(SettingsPanel(layout, styles.NormalSkin, 40))
	assert.Contains(t, out, "Δv, descending")
	assert.Contains(t, out, "x 0.25  y 0.50")
	assert.NotContains(t, out, "Filter")
}
