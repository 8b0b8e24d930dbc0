package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownFields(t *testing.T) {
	tests := []struct {
		name string
		at   float64
		want [5]string
	}{
		{"past", -10, [5]string{"", "", "", "", "0s"}},
		{"seconds", 42, [5]string{"", "", "", "", "42s"}},
		{"minutes", 61, [5]string{"", "", "", "1m", "1s"}},
		{"inner zero kept", SecondsPerHour + 5, [5]string{"", "", "1h", "0m", "5s"}},
		{"days", 2*SecondsPerDay + 3*SecondsPerHour, [5]string{"", "2d", "3h", "0m", "0s"}},
		{"years", SecondsPerYear + SecondsPerDay, [5]string{"1y", "1d", "0h", "0m", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCountdown(tt.at, 0).Fields())
		})
	}
}

func TestCountdownString(t *testing.T) {
	assert.Equal(t, "1d 0h 0m 0s", NewCountdown(1000+SecondsPerDay, 1000).String())
}

func TestFormatDeltaV(t *testing.T) {
	assert.Equal(t, "1051 m/s", FormatDeltaV(1050.6))
}

func TestTransferRowAlignsWithColumns(t *testing.T) {
	eve := &domain.Transfer{
		Destination:  &domain.Body{Name: "Eve"},
		EjectionBurn: &domain.Burn{AtTime: 100 + SecondsPerHour + 90, TotalDeltaV: 1050},
	}
	jool := &domain.Transfer{Destination: &domain.Body{Name: "Jool"}}
	native := []*domain.Transfer{jool, eve}

	ctx := view.RuntimeContext{HasActiveVessel: true, ColumnSpacing: 1}
	columns := view.VisibleColumns(view.Columns, ctx)
	rowCtx := view.NewRowContext(native, columns, 1, 100)

	r := NewTransferRow(styles.NormalSkin)

	row := ansi.Strip(r.RenderRow(eve, rowCtx))
	headers := view.BuildHeaders(view.Columns, ctx, domain.DefaultSortState())
	width := 0
	for _, h := range headers {
		width += h.Width
	}
	width += (len(headers) - 1) * ctx.ColumnSpacing
	assert.Equal(t, width, ansi.StringWidth(row), "row spans the header row")

	assert.True(t, strings.HasPrefix(row, "  2"), "position is the model order")
	assert.Contains(t, row, "Eve")
	assert.Contains(t, row, "1h")
	assert.Contains(t, row, "1m")
	assert.Contains(t, row, "30s")
	assert.Contains(t, row, "1050 m/s")
	assert.Contains(t, row, ManeuverGlyph)

	blank := ansi.Strip(r.RenderRow(jool, rowCtx))
	require.Contains(t, blank, "Jool")
	assert.NotContains(t, blank, "m/s")
	assert.NotContains(t, blank, WarpGlyph)
}

func TestTransferRowWithoutVessel(t *testing.T) {
	eve := &domain.Transfer{
		Destination:  &domain.Body{Name: "Eve"},
		EjectionBurn: &domain.Burn{AtTime: 100, TotalDeltaV: 1050},
	}
	ctx := view.RuntimeContext{ColumnSpacing: 1}
	rowCtx := view.NewRowContext([]*domain.Transfer{eve}, view.VisibleColumns(view.Columns, ctx), 1, 0)

	row := ansi.Strip(NewTransferRow(styles.NormalSkin).RenderRow(eve, rowCtx))
	assert.NotContains(t, row, ManeuverGlyph)
	assert.NotContains(t, row, WarpGlyph)
}

func TestTransferRowMissingDestination(t *testing.T) {
	unknown := &domain.Transfer{}
	ctx := view.RuntimeContext{ColumnSpacing: 1}
	rowCtx := view.NewRowContext([]*domain.Transfer{unknown}, view.VisibleColumns(view.Columns, ctx), 1, 0)

	row := ansi.Strip(NewTransferRow(styles.NormalSkin).RenderRow(unknown, rowCtx))
	assert.Contains(t, row, "?")
}
