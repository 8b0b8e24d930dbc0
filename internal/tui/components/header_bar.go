package components

import (
	"strings"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
)

// HeaderBar renders the header row and tracks which sortable cell has
// keyboard focus. The cells are replaced wholesale on every rebuild.
type HeaderBar struct {
	cells   []view.HeaderCell
	spacing int
	sort    domain.SortState

	cursor  int // Index into cells, -1 when nothing is selectable
	focused bool
}

// NewHeaderBar creates an empty header bar
func NewHeaderBar() HeaderBar {
	return HeaderBar{cursor: -1}
}

// SetCells replaces the header row. The cursor stays on the same sort key
// when that column is still present.
func (h *HeaderBar) SetCells(cells []view.HeaderCell, spacing int, sort domain.SortState) {
	var previous domain.SortKey = -1
	if cell, ok := h.Selected(); ok {
		previous = cell.Key
	}

	h.cells = cells
	h.spacing = spacing
	h.sort = sort
	h.cursor = -1

	for i, cell := range cells {
		if !cell.Sortable {
			continue
		}
		if h.cursor < 0 || cell.Key == previous {
			h.cursor = i
		}
		if cell.Key == previous {
			break
		}
	}
}

// Cells returns the current header row
func (h HeaderBar) Cells() []view.HeaderCell {
	return h.cells
}

// Focus gives the bar keyboard focus
func (h *HeaderBar) Focus() {
	h.focused = true
}

// Blur removes keyboard focus
func (h *HeaderBar) Blur() {
	h.focused = false
}

// Focused reports whether the bar has keyboard focus
func (h HeaderBar) Focused() bool {
	return h.focused
}

// Next moves the cursor to the next sortable cell, wrapping around
func (h *HeaderBar) Next() {
	h.move(1)
}

// Prev moves the cursor to the previous sortable cell, wrapping around
func (h *HeaderBar) Prev() {
	h.move(-1)
}

func (h *HeaderBar) move(step int) {
	n := len(h.cells)
	if n == 0 || h.cursor < 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := ((h.cursor+step*i)%n + n) % n
		if h.cells[idx].Sortable {
			h.cursor = idx
			return
		}
	}
}

// Select puts the cursor on cell i if it is sortable
func (h *HeaderBar) Select(i int) bool {
	if i < 0 || i >= len(h.cells) || !h.cells[i].Sortable {
		return false
	}
	h.cursor = i
	return true
}

// Selected returns the cell under the cursor
func (h HeaderBar) Selected() (view.HeaderCell, bool) {
	if h.cursor < 0 || h.cursor >= len(h.cells) {
		return view.HeaderCell{}, false
	}
	return h.cells[h.cursor], true
}

// View renders the header row with the given skin
func (h HeaderBar) View(skin styles.Skin) string {
	parts := make([]string, 0, len(h.cells))
	for i, cell := range h.cells {
		text := styles.Fit(cell.Text, cell.Width, styles.Align(cell.Style))

		style := skin.Header
		switch {
		case !cell.Sortable:
		case h.focused && i == h.cursor:
			style = skin.HeaderFocused
		case cell.Key == h.sort.Key:
			style = skin.HeaderActive
		default:
			style = skin.HeaderButton
		}
		parts = append(parts, style.Render(text))
	}
	return strings.Join(parts, styles.Spaces(h.spacing))
}
