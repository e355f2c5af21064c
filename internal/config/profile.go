package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Profile is a named scoring override loaded from a YAML file. Only the
// values a profile sets are overridden; everything else keeps the base
// configuration.
type Profile struct {
	Name    string         `yaml:"name"`
	Weights ProfileWeights `yaml:"weights"`
	Tiers   ProfileTiers   `yaml:"tiers"`
}

// ProfileWeights holds optional per-metric weight overrides.
type ProfileWeights struct {
	Points    *float64 `yaml:"points,omitempty"`
	Assists   *float64 `yaml:"assists,omitempty"`
	Rebounds  *float64 `yaml:"rebounds,omitempty"`
	Steals    *float64 `yaml:"steals,omitempty"`
	Turnovers *float64 `yaml:"turnovers,omitempty"`
}

// ProfileTiers holds optional tier cutoff overrides.
type ProfileTiers struct {
	Elite   *float64 `yaml:"elite,omitempty"`
	Strong  *float64 `yaml:"strong,omitempty"`
	Average *float64 `yaml:"average,omitempty"`
}

// LoadProfile reads a scoring profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read profile %s", path)
	}

	// The YAML has a top-level "profile" key
	var wrapper struct {
		Profile Profile `yaml:"profile"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrapf(err, "config: parse profile %s", path)
	}

	return &wrapper.Profile, nil
}

// Apply overlays the profile onto a base scoring config and returns the
// result. The base is not modified.
func (p *Profile) Apply(base ScoringConfig) ScoringConfig {
	out := base

	if p.Weights.Points != nil {
		out.Weights.Points = *p.Weights.Points
	}
	if p.Weights.Assists != nil {
		out.Weights.Assists = *p.Weights.Assists
	}
	if p.Weights.Rebounds != nil {
		out.Weights.Rebounds = *p.Weights.Rebounds
	}
	if p.Weights.Steals != nil {
		out.Weights.Steals = *p.Weights.Steals
	}
	if p.Weights.Turnovers != nil {
		out.Weights.Turnovers = *p.Weights.Turnovers
	}
	if p.Tiers.Elite != nil {
		out.Tiers.Elite = *p.Tiers.Elite
	}
	if p.Tiers.Strong != nil {
		out.Tiers.Strong = *p.Tiers.Strong
	}
	if p.Tiers.Average != nil {
		out.Tiers.Average = *p.Tiers.Average
	}

	return out
}
