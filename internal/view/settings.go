package view

import (
	"errors"
	"log/slog"

	"github.com/mmcdole/astrogator/internal/domain"
)

// Settings is the view's settings context. It is passed explicitly to the
// parts that need it and falls back to defaults for anything missing from
// the store. Writes go through to the store immediately.
//
// Settings is not safe for concurrent use; the UI loop owns it.
type Settings struct {
	store  domain.SettingsStore
	logger *slog.Logger

	sort     domain.SortState
	geometry domain.WindowGeometry
	prefs    domain.Preferences
}

// NewSettings loads settings from store. A nil store keeps everything in memory.
func NewSettings(store domain.SettingsStore, logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Settings{
		store:    store,
		logger:   logger,
		sort:     domain.DefaultSortState(),
		geometry: domain.DefaultWindowGeometry(),
	}
	if store == nil {
		return s
	}

	if st, err := store.GetSortState(); err == nil {
		s.sort = st
	} else {
		s.logMissing("sort", err)
	}
	if g, err := store.GetWindowGeometry(); err == nil {
		s.geometry = g
	} else {
		s.logMissing("geometry", err)
	}
	if p, err := store.GetPreferences(); err == nil {
		s.prefs = p
	} else {
		s.logMissing("preferences", err)
	}
	return s
}

func (s *Settings) logMissing(setting string, err error) {
	if errors.Is(err, domain.ErrSettingNotFound) {
		s.logger.Debug("using default setting", "setting", setting)
		return
	}
	s.logger.Warn("failed to load setting, using default", "setting", setting, "error", err)
}

// SortState returns the active sort order
func (s *Settings) SortState() domain.SortState {
	return s.sort
}

// SetSortState replaces and persists the sort order
func (s *Settings) SetSortState(state domain.SortState) {
	s.sort = state
	if s.store == nil {
		return
	}
	if err := s.store.SaveSortState(state); err != nil {
		s.logger.Error("failed to save sort state", "error", err)
	}
}

// WindowGeometry returns the popup position as screen fractions
func (s *Settings) WindowGeometry() domain.WindowGeometry {
	return s.geometry
}

// SetWindowGeometry replaces and persists the popup position
func (s *Settings) SetWindowGeometry(geometry domain.WindowGeometry) {
	s.geometry = geometry
	if s.store == nil {
		return
	}
	if err := s.store.SaveWindowGeometry(geometry); err != nil {
		s.logger.Error("failed to save window geometry", "error", err)
	}
}

// Preferences returns the persisted view toggles
func (s *Settings) Preferences() domain.Preferences {
	return s.prefs
}

// SetPreferences replaces and persists the view toggles
func (s *Settings) SetPreferences(prefs domain.Preferences) {
	s.prefs = prefs
	if s.store == nil {
		return
	}
	if err := s.store.SavePreferences(prefs); err != nil {
		s.logger.Error("failed to save preferences", "error", err)
	}
}

// ClickColumn applies a column selection to the persisted sort order
func (s *Settings) ClickColumn(key domain.SortKey) domain.SortState {
	s.SetSortState(OnColumnClicked(s.sort, key))
	return s.sort
}

// ToggleShowSettings flips the settings panel visibility
func (s *Settings) ToggleShowSettings() bool {
	prefs := s.prefs
	prefs.ShowSettings = !prefs.ShowSettings
	s.SetPreferences(prefs)
	return prefs.ShowSettings
}
