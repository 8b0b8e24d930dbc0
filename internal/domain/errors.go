package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidSortKey indicates a sort key outside the declared set
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrSettingNotFound indicates nothing has been persisted for a setting yet
	ErrSettingNotFound = errors.New("setting not found")

	// ErrNoScreen indicates the host has not reported a screen size yet
	ErrNoScreen = errors.New("screen size unknown")
)
