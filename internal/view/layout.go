package view

import (
	"log/slog"

	"github.com/mmcdole/astrogator/internal/domain"
)

// Layout is the complete, derived content of the popup for one build
type Layout struct {
	Title    string
	Subtitle string
	State    ViewState
	Skin     SkinName

	// Only populated in StateNormal
	Headers []HeaderCell
	Columns []ColumnDescriptor
	Rows    []string

	Spacing      int
	Sort         domain.SortState
	Filter       string
	Matched      int // Rows left after filtering
	Total        int // Rows before filtering
	ShowSettings bool
	Geometry     domain.WindowGeometry
}

// Normal reports whether the layout shows the transfer table
func (l Layout) Normal() bool {
	return l.State == StateNormal
}

// Builder turns a model and the current settings into a Layout. Every build
// starts from scratch; nothing is carried over from a previous layout.
type Builder struct {
	Catalog  []ColumnDescriptor
	Spacing  int
	Settings *Settings
	Renderer RowRenderer
	Logger   *slog.Logger
}

// NewBuilder creates a builder over the default catalog
func NewBuilder(settings *Settings, renderer RowRenderer, spacing int, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		Catalog:  Columns,
		Spacing:  spacing,
		Settings: settings,
		Renderer: renderer,
		Logger:   logger,
	}
}

// Build derives the layout. filter narrows rows by destination name.
func (b *Builder) Build(m *domain.Model, filter string) Layout {
	state := Classify(m)
	sortState := b.Settings.SortState()

	layout := Layout{
		Title:        DisplayName,
		Subtitle:     Subtitle(m),
		State:        state,
		Skin:         Skin(state),
		Spacing:      b.Spacing,
		Sort:         sortState,
		Filter:       filter,
		ShowSettings: b.Settings.Preferences().ShowSettings,
		Geometry:     b.Settings.WindowGeometry(),
	}

	if state != StateNormal {
		b.Logger.Debug("showing placeholder", "state", state.String())
		return layout
	}

	ctx := RuntimeContext{HasActiveVessel: m.HasActiveVessel, ColumnSpacing: b.Spacing}
	layout.Headers = BuildHeaders(b.Catalog, ctx, sortState)
	layout.Columns = VisibleColumns(b.Catalog, ctx)

	sorted := SortTransfers(m.Transfers, sortState.Key, sortState.Descending)
	shown := FilterTransfers(sorted, filter)
	layout.Total = len(sorted)
	layout.Matched = len(shown)

	rowCtx := NewRowContext(m.Transfers, layout.Columns, b.Spacing, m.Now)
	layout.Rows = BuildRows(shown, b.Renderer, rowCtx)

	return layout
}
