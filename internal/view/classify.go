package view

import (
	"fmt"
	"strings"

	"github.com/mmcdole/astrogator/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ViewState is the placeholder or error state of the popup, derived from
// the model on every build.
type ViewState int

const (
	StateNormal ViewState = iota
	StateNoModel
	StateHyperbolicOrbit
	StateNotOrbiting
	StateBadInclination
	StateNoTransfers
)

// String returns a short name for logs
func (s ViewState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateNoModel:
		return "no_model"
	case StateHyperbolicOrbit:
		return "hyperbolic_orbit"
	case StateNotOrbiting:
		return "not_orbiting"
	case StateBadInclination:
		return "bad_inclination"
	case StateNoTransfers:
		return "no_transfers"
	default:
		return "unknown"
	}
}

// SkinName names one of the two popup skins
type SkinName string

const (
	SkinNormal SkinName = "normal"
	SkinError  SkinName = "error"
)

// Classify derives the view state. Conditions are checked in priority order
// and the first match wins.
func Classify(m *domain.Model) ViewState {
	switch {
	case m == nil:
		return StateNoModel
	case m.HyperbolicOrbit:
		return StateHyperbolicOrbit
	case m.NotOrbiting:
		return StateNotOrbiting
	case m.BadInclination():
		return StateBadInclination
	case len(m.Transfers) == 0:
		return StateNoTransfers
	case m.ErrorCondition:
		return StateNoModel
	default:
		return StateNormal
	}
}

// Subtitle returns the line shown under the popup title for the model
func Subtitle(m *domain.Model) string {
	switch Classify(m) {
	case StateNoModel:
		return "Internal error: Model not found"
	case StateHyperbolicOrbit:
		return fmt.Sprintf("%s is on a hyperbolic trajectory. Capture to see transfer info.",
			capitalize(m.Origin.TheName()))
	case StateNotOrbiting:
		return fmt.Sprintf("%s is landed. Launch to orbit to see transfer info.",
			capitalize(m.Origin.TheName()))
	case StateBadInclination:
		return fmt.Sprintf("Inclination is %.1f°, accuracy too low past %.0f°",
			domain.AngleFromEquatorial(m.Inclination), m.MaxInclination)
	case StateNoTransfers:
		return "No transfers available"
	default:
		return fmt.Sprintf("Transfers from %s", m.Origin.TheName())
	}
}

// Skin selects the popup skin for a view state
func Skin(state ViewState) SkinName {
	if state == StateNormal {
		return SkinNormal
	}
	return SkinError
}

// capitalize upper-cases the first word only, leaving body names as written
func capitalize(s string) string {
	first, rest, found := strings.Cut(s, " ")
	first = cases.Title(language.English, cases.NoLower).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}
