package view

import (
	"testing"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nameRenderer = RowRendererFunc(func(t *domain.Transfer, _ RowContext) string {
	return t.DestinationName()
})

func TestBuilderNormal(t *testing.T) {
	settings := NewSettings(nil, nil)
	settings.SetSortState(domain.SortState{Key: domain.SortDeltaV, Descending: true})
	b := NewBuilder(settings, nameRenderer, 1, nil)

	layout := b.Build(healthyModel(), "")

	assert.True(t, layout.Normal())
	assert.Equal(t, SkinNormal, layout.Skin)
	assert.Equal(t, DisplayName, layout.Title)
	assert.Equal(t, "Transfers from Kerbin", layout.Subtitle)
	assert.Equal(t, []string{"Moho", "Jool", "Dres", "Duna", "Eve"}, layout.Rows)
	assert.Len(t, layout.Headers, 6)
	assert.Len(t, layout.Columns, len(Columns))
	assert.Equal(t, 5, layout.Total)
	assert.Equal(t, 5, layout.Matched)
}

func TestBuilderPlaceholderSkipsTable(t *testing.T) {
	rendered := 0
	renderer := RowRendererFunc(func(*domain.Transfer, RowContext) string {
		rendered++
		return ""
	})
	b := NewBuilder(NewSettings(nil, nil), renderer, 1, nil)

	m := healthyModel()
	m.NotOrbiting = true
	layout := b.Build(m, "")

	assert.Equal(t, StateNotOrbiting, layout.State)
	assert.Equal(t, SkinError, layout.Skin)
	assert.Empty(t, layout.Headers)
	assert.Empty(t, layout.Rows)
	assert.Zero(t, rendered)

	layout = b.Build(nil, "")
	assert.Equal(t, StateNoModel, layout.State)
	assert.Empty(t, layout.Headers)
}

func TestBuilderRebuildReflectsSortChange(t *testing.T) {
	settings := NewSettings(nil, nil)
	b := NewBuilder(settings, nameRenderer, 1, nil)
	m := healthyModel()

	first := b.Build(m, "")
	assert.Equal(t, []string{"Moho", "Eve", "Duna", "Jool", "Dres"}, first.Rows)

	settings.ClickColumn(domain.SortName)
	second := b.Build(m, "")
	assert.Equal(t, []string{"Dres", "Duna", "Eve", "Jool", "Moho"}, second.Rows)
	assert.Equal(t, []string{"Moho", "Eve", "Duna", "Jool", "Dres"}, first.Rows)
}

func TestBuilderFilter(t *testing.T) {
	b := NewBuilder(NewSettings(nil, nil), nameRenderer, 1, nil)

	layout := b.Build(healthyModel(), "du")

	assert.Equal(t, []string{"Duna"}, layout.Rows)
	assert.Equal(t, 1, layout.Matched)
	assert.Equal(t, 5, layout.Total)
}

func TestBuilderHidesVesselColumns(t *testing.T) {
	b := NewBuilder(NewSettings(nil, nil), nameRenderer, 1, nil)
	m := healthyModel()
	m.HasActiveVessel = false

	layout := b.Build(m, "")

	require.Len(t, layout.Headers, 4)
	for _, col := range layout.Columns {
		assert.False(t, col.VesselSpecific)
	}
}
