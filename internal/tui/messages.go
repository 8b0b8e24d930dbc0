package tui

// Message types for the TUI

// RebuildMsg asks the model to rebuild the whole popup layout. It is sent
// after every sort or settings change instead of patching the current layout.
type RebuildMsg struct{}

// TickMsg advances the burn countdowns
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
