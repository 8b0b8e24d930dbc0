package view

import (
	"slices"
	"strings"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/sahilm/fuzzy"
)

// RowContext is what a row renderer needs besides the transfer itself
type RowContext struct {
	Columns []ColumnDescriptor // Visible columns, in order
	Spacing int
	Now     float64 // Universal time the countdowns are measured from

	positions map[*domain.Transfer]int
}

// Position returns the 1-based index of t in the model's own order, or 0
func (c RowContext) Position(t *domain.Transfer) int {
	return c.positions[t]
}

// RowRenderer renders a single transfer row
type RowRenderer interface {
	RenderRow(t *domain.Transfer, ctx RowContext) string
}

// RowRendererFunc adapts a function to RowRenderer
type RowRendererFunc func(t *domain.Transfer, ctx RowContext) string

// RenderRow implements RowRenderer
func (f RowRendererFunc) RenderRow(t *domain.Transfer, ctx RowContext) string {
	return f(t, ctx)
}

// NewRowContext records model positions for the given native order
func NewRowContext(native []*domain.Transfer, columns []ColumnDescriptor, spacing int, now float64) RowContext {
	positions := make(map[*domain.Transfer]int, len(native))
	for i, t := range native {
		positions[t] = i + 1
	}
	return RowContext{Columns: columns, Spacing: spacing, Now: now, positions: positions}
}

// BuildRows renders one row per transfer, in the given order
func BuildRows(sorted []*domain.Transfer, renderer RowRenderer, ctx RowContext) []string {
	rows := make([]string, 0, len(sorted))
	for _, t := range sorted {
		rows = append(rows, renderer.RenderRow(t, ctx))
	}
	return rows
}

// FilterTransfers keeps the transfers whose destination fuzzily matches
// query. Order is preserved. An empty query keeps everything.
func FilterTransfers(transfers []*domain.Transfer, query string) []*domain.Transfer {
	query = strings.TrimSpace(query)
	if query == "" {
		return transfers
	}

	names := make([]string, len(transfers))
	for i, t := range transfers {
		names[i] = strings.ToLower(t.DestinationName())
	}

	matches := fuzzy.Find(strings.ToLower(query), names)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	slices.Sort(idx)

	filtered := make([]*domain.Transfer, len(idx))
	for i, j := range idx {
		filtered[i] = transfers[j]
	}
	return filtered
}
