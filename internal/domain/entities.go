package domain

import (
	"fmt"
	"math"
)

// Body is a celestial body (or vessel) that can be the origin or destination of a transfer
type Body struct {
	Name    string // Display name
	Article bool   // Prefix "the" in sentences ("the Mun")
}

// TheName returns the name as it reads inside a sentence
func (b Body) TheName() string {
	if b.Article {
		return "the " + b.Name
	}
	return b.Name
}

// Burn is the ejection maneuver that starts a transfer
type Burn struct {
	AtTime      float64 // Universal time of the burn start, in seconds
	TotalDeltaV float64 // Total velocity change required, in m/s
}

// Transfer is one row of the transfer table. Either pointer may be nil when the
// model could not compute that part of the transfer.
type Transfer struct {
	Destination  *Body
	EjectionBurn *Burn
}

// DestinationName returns the destination's display name, or "" if absent
func (t *Transfer) DestinationName() string {
	if t == nil || t.Destination == nil {
		return ""
	}
	return t.Destination.Name
}

// BurnTime returns the ejection burn start time, or 0 if absent
func (t *Transfer) BurnTime() float64 {
	if t == nil || t.EjectionBurn == nil {
		return 0
	}
	return t.EjectionBurn.AtTime
}

// DeltaV returns the total delta-v of the ejection burn, or 0 if absent
func (t *Transfer) DeltaV() float64 {
	if t == nil || t.EjectionBurn == nil {
		return 0
	}
	return t.EjectionBurn.TotalDeltaV
}

// HasBurn reports whether the ejection burn was computed
func (t *Transfer) HasBurn() bool {
	return t != nil && t.EjectionBurn != nil
}

// Origin is where transfers start from
type Origin struct {
	Body
	IsVessel bool // Origin is a vessel rather than a body
}

// Model is the transfer model consumed by the view. It is produced elsewhere
// and is read-only here.
type Model struct {
	Origin    Origin
	Transfers []*Transfer

	HasActiveVessel bool // An active, trackable vessel exists at the origin
	ErrorCondition  bool // The model failed internally

	// Orbit shape flags
	HyperbolicOrbit bool
	NotOrbiting     bool

	Inclination    float64 // Origin orbit inclination, degrees
	MaxInclination float64 // Largest inclination with usable accuracy, degrees

	Now float64 // Current universal time, seconds
}

// BadInclination reports whether the origin orbit is too far from the
// equatorial plane for the transfer calculations to be accurate.
func (m *Model) BadInclination() bool {
	if m == nil || m.MaxInclination <= 0 {
		return false
	}
	return AngleFromEquatorial(m.Inclination) > m.MaxInclination
}

// AngleFromEquatorial folds an inclination in degrees onto [0, 90], so that
// retrograde equatorial orbits count as equatorial.
func AngleFromEquatorial(inclination float64) float64 {
	i := math.Mod(math.Abs(inclination), 360)
	if i > 180 {
		i = 360 - i
	}
	if i > 90 {
		i = 180 - i
	}
	return i
}

// SortKey identifies a sortable column of the transfer table
type SortKey int

const (
	SortName SortKey = iota
	SortPosition
	SortTime
	SortDeltaV
)

var sortKeyNames = map[SortKey]string{
	SortName:     "name",
	SortPosition: "position",
	SortTime:     "time",
	SortDeltaV:   "deltav",
}

// SortKeys returns every valid sort key in declaration order
func SortKeys() []SortKey {
	return []SortKey{SortName, SortPosition, SortTime, SortDeltaV}
}

// Valid reports whether k is one of the declared sort keys
func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

// String returns the persisted name of the sort key
func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler
func (k SortKey) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSortKey, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *SortKey) UnmarshalText(text []byte) error {
	key, err := ParseSortKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// ParseSortKey converts a persisted name back into a SortKey
func ParseSortKey(name string) (SortKey, error) {
	for k, n := range sortKeyNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSortKey, name)
}

// SortState is the persisted sort order of the transfer table
type SortState struct {
	Key        SortKey `json:"key"`
	Descending bool    `json:"descending"`
}

// DefaultSortState returns the sort order used when none is persisted
func DefaultSortState() SortState {
	return SortState{Key: SortPosition}
}

// WindowGeometry is the persisted popup position as fractions of the screen
// size. 0.5 on both axes is centered.
type WindowGeometry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultWindowGeometry returns the centered position
func DefaultWindowGeometry() WindowGeometry {
	return WindowGeometry{X: 0.5, Y: 0.5}
}

// Preferences holds persisted view toggles
type Preferences struct {
	ShowSettings bool `json:"show_settings"`
}
