package domain

// SettingsStore persists view state across sessions.
// Getters return ErrSettingNotFound when nothing has been saved yet.
type SettingsStore interface {
	GetSortState() (SortState, error)
	SaveSortState(state SortState) error

	GetWindowGeometry() (WindowGeometry, error)
	SaveWindowGeometry(geometry WindowGeometry) error

	GetPreferences() (Preferences, error)
	SavePreferences(prefs Preferences) error

	Close() error
}
