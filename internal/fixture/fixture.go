// Package fixture loads transfer models from TOML files. It stands in for
// the flight planner that normally computes the model.
package fixture

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mmcdole/astrogator/internal/domain"
)

//go:embed demo.toml
var demoModel string

type modelFile struct {
	Now          float64        `toml:"now"`
	ActiveVessel bool           `toml:"active_vessel"`
	Error        bool           `toml:"error"`
	Origin       originFile     `toml:"origin"`
	Transfers    []transferFile `toml:"transfers"`
}

type originFile struct {
	Name        string  `toml:"name"`
	Article     bool    `toml:"article"`
	Vessel      bool    `toml:"vessel"`
	Hyperbolic  bool    `toml:"hyperbolic"`
	Landed      bool    `toml:"landed"`
	Inclination float64 `toml:"inclination"`
}

type transferFile struct {
	Destination string    `toml:"destination"`
	Article     bool      `toml:"article"`
	Burn        *burnFile `toml:"burn"`
}

type burnFile struct {
	AtTime float64 `toml:"at_time"`
	DeltaV float64 `toml:"delta_v"`
}

// Source serves a model loaded from TOML. The model clock advances with wall
// time so burn countdowns move.
type Source struct {
	model *domain.Model
	start time.Time
	clock func() time.Time
}

// Load reads a model from path, or the built-in demo when path is empty
func Load(path string, maxInclination float64) (*Source, error) {
	var f modelFile
	var md toml.MetaData
	var err error

	if path == "" {
		md, err = toml.Decode(demoModel, &f)
	} else {
		md, err = toml.DecodeFile(path, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode transfers: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in transfers file: %v", undecoded)
	}

	return NewSource(f.toModel(maxInclination), time.Now), nil
}

// NewSource serves m, advancing its clock with clock
func NewSource(m *domain.Model, clock func() time.Time) *Source {
	return &Source{model: m, start: clock(), clock: clock}
}

// Model implements domain.ModelSource
func (s *Source) Model() *domain.Model {
	if s.model == nil {
		return nil
	}
	m := *s.model
	m.Now += s.clock().Sub(s.start).Seconds()
	return &m
}

func (f modelFile) toModel(maxInclination float64) *domain.Model {
	m := &domain.Model{
		Origin: domain.Origin{
			Body:     domain.Body{Name: f.Origin.Name, Article: f.Origin.Article},
			IsVessel: f.Origin.Vessel,
		},
		HasActiveVessel: f.ActiveVessel,
		ErrorCondition:  f.Error,
		HyperbolicOrbit: f.Origin.Hyperbolic,
		NotOrbiting:     f.Origin.Landed,
		Inclination:     f.Origin.Inclination,
		MaxInclination:  maxInclination,
		Now:             f.Now,
	}

	m.Transfers = make([]*domain.Transfer, 0, len(f.Transfers))
	for _, tf := range f.Transfers {
		t := &domain.Transfer{}
		if tf.Destination != "" {
			t.Destination = &domain.Body{Name: tf.Destination, Article: tf.Article}
		}
		if tf.Burn != nil {
			t.EjectionBurn = &domain.Burn{AtTime: tf.Burn.AtTime, TotalDeltaV: tf.Burn.DeltaV}
		}
		m.Transfers = append(m.Transfers, t)
	}
	return m
}
