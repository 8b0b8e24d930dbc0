package view

import "github.com/mmcdole/astrogator/internal/domain"

// Sort indicators appended to the active column's header
const (
	IndicatorAscending  = " ↑"
	IndicatorDescending = " ↓"
)

// RuntimeContext carries the per-build conditions that affect column layout
type RuntimeContext struct {
	HasActiveVessel bool
	ColumnSpacing   int // Cells between adjacent columns
}

// HeaderCell is one rendered header of the transfer table
type HeaderCell struct {
	Text     string // Header text plus sort indicator
	Width    int
	Key      domain.SortKey
	Sortable bool // Selecting the cell changes the sort
	Style    StyleID
}

// Visible reports whether the column is shown in the given context
func (c ColumnDescriptor) Visible(ctx RuntimeContext) bool {
	return !c.VesselSpecific || ctx.HasActiveVessel
}

// VisibleColumns returns the catalog entries shown in the given context
func VisibleColumns(catalog []ColumnDescriptor, ctx RuntimeContext) []ColumnDescriptor {
	visible := make([]ColumnDescriptor, 0, len(catalog))
	for _, col := range catalog {
		if col.Visible(ctx) && col.Width > 0 {
			visible = append(visible, col)
		}
	}
	return visible
}

// SortIndicator returns the suffix for a column header given the sort state
func SortIndicator(key domain.SortKey, state domain.SortState) string {
	switch {
	case key != state.Key:
		return ""
	case state.Descending:
		return IndicatorDescending
	default:
		return IndicatorAscending
	}
}

// BuildHeaders derives the header row from the catalog.
//
// Hidden columns add neither width nor a spacing gap, including inside a
// group. A group whose members are all hidden produces no cell.
func BuildHeaders(catalog []ColumnDescriptor, ctx RuntimeContext, state domain.SortState) []HeaderCell {
	var cells []HeaderCell

	for i := 0; i < len(catalog); {
		col := catalog[i]
		end := min(i+max(col.HeaderColumnSpan, 1), len(catalog))

		if col.Visible(ctx) {
			width, members := 0, 0
			for _, member := range catalog[i:end] {
				if member.Visible(ctx) && member.Width > 0 {
					width += member.Width
					members++
				}
			}
			if width > 0 {
				// Gaps that would sit between the spanned cells
				width += (members - 1) * ctx.ColumnSpacing

				cell := HeaderCell{
					Text:  col.Header,
					Width: width,
					Key:   col.SortKey,
					Style: col.Style,
				}
				if col.Header != "" && col.Sortable {
					cell.Sortable = true
					cell.Text += SortIndicator(col.SortKey, state)
				}
				cells = append(cells, cell)
			}
		}

		i = end
	}

	return cells
}

// HeaderAt returns the index of the header cell under horizontal offset x,
// measured from the left edge of the header row. Gaps between cells hit nothing.
func HeaderAt(cells []HeaderCell, spacing, x int) (int, bool) {
	pos := 0
	for i, cell := range cells {
		if x >= pos && x < pos+cell.Width {
			return i, true
		}
		pos += cell.Width + spacing
	}
	return -1, false
}
