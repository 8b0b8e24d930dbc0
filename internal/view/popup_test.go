package view

import (
	"testing"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryRoundTrip(t *testing.T) {
	for _, dim := range []int{1, 80, 137, 1920} {
		for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.6, 0.75, 0.999, 1} {
			got := ToFraction(ToAbsolute(f, dim), dim)
			assert.InDelta(t, f, got, 1e-9, "f=%v dim=%d", f, dim)
		}
	}
}

func TestToAbsoluteCentered(t *testing.T) {
	assert.Equal(t, 0.0, ToAbsolute(0.5, 100))
	assert.Equal(t, -50.0, ToAbsolute(0, 100))
	assert.Equal(t, 25.0, ToAbsolute(0.75, 100))
}

func TestLifecycleShowDismiss(t *testing.T) {
	store := newMemStore()
	store.geometry = &domain.WindowGeometry{X: 0.6, Y: 0.4}
	settings := NewSettings(store, nil)
	lc := NewLifecycle(settings)

	p, err := lc.Show(Screen{Width: 200, Height: 100})
	require.NoError(t, err)
	assert.True(t, lc.Visible())
	assert.InDelta(t, 20, p.X, 1e-9)
	assert.InDelta(t, -10, p.Y, 1e-9)

	again, err := lc.Show(Screen{Width: 200, Height: 100})
	require.NoError(t, err)
	assert.Same(t, p, again)

	p.MoveBy(5, 3)
	lc.Dismiss()

	assert.False(t, lc.Visible())
	assert.Nil(t, lc.Popup())
	require.NotNil(t, store.geometry)
	assert.InDelta(t, 0.625, store.geometry.X, 1e-9)
	assert.InDelta(t, 0.43, store.geometry.Y, 1e-9)
	assert.Equal(t, *store.geometry, settings.WindowGeometry())
}

func TestLifecycleDismissWithoutPopup(t *testing.T) {
	store := newMemStore()
	store.geometry = &domain.WindowGeometry{X: 0.3, Y: 0.7}
	settings := NewSettings(store, nil)
	lc := NewLifecycle(settings)

	require.NotPanics(t, lc.Dismiss)
	assert.Equal(t, 0, store.geometrySaves)
	assert.Equal(t, domain.WindowGeometry{X: 0.3, Y: 0.7}, settings.WindowGeometry())
}

func TestLifecycleShowWithoutScreen(t *testing.T) {
	lc := NewLifecycle(NewSettings(nil, nil))

	_, err := lc.Show(Screen{})
	assert.ErrorIs(t, err, domain.ErrNoScreen)
	assert.False(t, lc.Visible())
}

func TestPopupStaysOnScreen(t *testing.T) {
	lc := NewLifecycle(NewSettings(nil, nil))
	p, err := lc.Show(Screen{Width: 100, Height: 40})
	require.NoError(t, err)
	p.SetSize(60, 10)

	left, top := p.TopLeft()
	assert.Equal(t, 20, left)
	assert.Equal(t, 15, top)

	p.MoveBy(-100, 100)
	left, top = p.TopLeft()
	assert.Equal(t, 0, left)
	assert.Equal(t, 30, top)
}
