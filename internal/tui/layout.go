package tui

import (
	"github.com/mmcdole/astrogator/internal/view"
)

// Popup chrome, in cells. Must agree with the skin's Window style.
const (
	popupBorder  = 1
	popupPadding = 1
	popupChromeX = 2 * (popupBorder + popupPadding)
	popupChromeY = 2 * popupBorder

	// Lines inside the border above the header row: title and subtitle
	headerRowOffset = 2
)

// innerWidth is the content width of the popup for lines of the given width
func innerWidth(widest int) int {
	return max(view.PopupMinWidth-popupChromeX, widest)
}

// innerHeight is the content height of the popup for the given line count
func innerHeight(lines int) int {
	return max(view.PopupMinHeight-popupChromeY, lines)
}

// headerAt returns the header cell under screen cell (x, y)
func (m Model) headerAt(x, y int) (int, bool) {
	p := m.Lifecycle.Popup()
	if p == nil || !m.Layout.Normal() {
		return -1, false
	}

	left, top := p.TopLeft()
	if y != top+popupBorder+headerRowOffset {
		return -1, false
	}
	return view.HeaderAt(m.Header.Cells(), m.Layout.Spacing, x-left-popupBorder-popupPadding)
}
