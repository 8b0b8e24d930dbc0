package view

import (
	"math"

	"github.com/mmcdole/astrogator/internal/domain"
)

// DisplayName is the user-facing title of the popup
const DisplayName = "Astrogator"

// Screen is the host's drawable area, in cells
type Screen struct {
	Width  int
	Height int
}

// Popup is the handle of a shown popup. X and Y are the offset of the popup
// centre from the screen centre, in cells.
type Popup struct {
	X, Y   float64
	Width  int
	Height int

	screen Screen
}

// SetSize records the rendered size of the popup and keeps it on screen
func (p *Popup) SetSize(width, height int) {
	p.Width = max(width, 1)
	p.Height = max(height, 1)
	p.clamp()
}

// SetScreen updates the screen the popup is placed on
func (p *Popup) SetScreen(screen Screen) {
	p.screen = screen
	p.clamp()
}

// Screen returns the screen the popup is placed on
func (p *Popup) Screen() Screen {
	return p.screen
}

// MoveBy moves the popup by whole cells, keeping it on screen
func (p *Popup) MoveBy(dx, dy int) {
	p.X += float64(dx)
	p.Y += float64(dy)
	p.clamp()
}

// TopLeft returns the cell the popup's top-left corner is drawn at
func (p *Popup) TopLeft() (left, top int) {
	left = (p.screen.Width-p.Width)/2 + int(math.Round(p.X))
	top = (p.screen.Height-p.Height)/2 + int(math.Round(p.Y))
	return max(left, 0), max(top, 0)
}

func (p *Popup) clamp() {
	limitX := math.Max(float64(p.screen.Width-p.Width)/2, 0)
	limitY := math.Max(float64(p.screen.Height-p.Height)/2, 0)
	p.X = math.Max(-limitX, math.Min(limitX, p.X))
	p.Y = math.Max(-limitY, math.Min(limitY, p.Y))
}

// Lifecycle shows and dismisses the popup and keeps its position in Settings
type Lifecycle struct {
	settings *Settings
	popup    *Popup
}

// NewLifecycle creates a lifecycle backed by settings
func NewLifecycle(settings *Settings) *Lifecycle {
	return &Lifecycle{settings: settings}
}

// Show places the popup at the persisted position and returns its handle.
// Showing an already visible popup returns the existing handle.
func (l *Lifecycle) Show(screen Screen) (*Popup, error) {
	if l.popup != nil {
		return l.popup, nil
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		return nil, domain.ErrNoScreen
	}

	g := l.settings.WindowGeometry()
	l.popup = &Popup{
		X:      ToAbsolute(g.X, screen.Width),
		Y:      ToAbsolute(g.Y, screen.Height),
		Width:  PopupMinWidth,
		Height: PopupMinHeight,
		screen: screen,
	}
	return l.popup, nil
}

// Popup returns the active handle, or nil
func (l *Lifecycle) Popup() *Popup {
	return l.popup
}

// Visible reports whether a popup is shown
func (l *Lifecycle) Visible() bool {
	return l.popup != nil
}

// Dismiss persists the popup position and closes it. Without an active popup
// it does nothing.
func (l *Lifecycle) Dismiss() {
	if l.popup == nil {
		return
	}
	p := l.popup
	l.settings.SetWindowGeometry(domain.WindowGeometry{
		X: ToFraction(p.X, p.screen.Width),
		Y: ToFraction(p.Y, p.screen.Height),
	})
	l.popup = nil
}
