// Package tuning exposes the tunable constants of the scroll physics as a
// single profile that can be decoded from YAML.
//
// The defaults reproduce the platform feel; embeddings that need a different
// feel decode a profile from bytes they obtained themselves — the package
// never touches files or the environment.
package tuning

import (
	"gopkg.in/yaml.v3"

	fluiderrors "github.com/go-drift/fluid/pkg/errors"
	"github.com/go-drift/fluid/pkg/gestures"
	"github.com/go-drift/fluid/pkg/physics"
)

// Tracker strategy names accepted in a profile.
const (
	StrategyNameRecurrence = "recurrence"
	StrategyNameLSQ2       = "lsq2"
)

// Profile collects the tunable constants of a scroll surface.
type Profile struct {
	// DecelerationRate is the per-millisecond velocity retention factor
	// after a fling. Values outside (0, 1) fall back to the default.
	DecelerationRate float64 `yaml:"deceleration_rate"`

	// BounceResponse is the spring-back stiffness expressed as an
	// approximate return duration in seconds. Non-positive values fall
	// back to the default.
	BounceResponse float64 `yaml:"bounce_response"`

	// RubberBandCoefficient is the fraction of the viewport dimension the
	// displayed overshoot saturates at. Values outside (0, 1] fall back to
	// the default.
	RubberBandCoefficient float64 `yaml:"rubber_band_coefficient"`

	// TrackerStrategy selects the velocity estimator: "recurrence" or
	// "lsq2". Unknown names fall back to "recurrence".
	TrackerStrategy string `yaml:"tracker_strategy"`
}

// Default returns the profile that reproduces the platform scroll feel.
func Default() Profile {
	return Profile{
		DecelerationRate:      physics.DecelerationRateNormal,
		BounceResponse:        physics.DefaultSpringBackResponse,
		RubberBandCoefficient: physics.RubberBandCoefficient,
		TrackerStrategy:       StrategyNameRecurrence,
	}
}

// Parse decodes a profile from YAML bytes. Omitted fields keep their
// defaults; the result is sanitized, so a successfully parsed profile can
// always configure a scroll surface.
func Parse(data []byte) (Profile, error) {
	profile := Default()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Default(), &fluiderrors.Error{Op: "tuning.Parse", Kind: fluiderrors.KindTuning, Err: err}
	}
	return profile.Sanitized(), nil
}

// Sanitized returns a copy with every out-of-range field replaced by its
// default, applying the core's input policies so an invalid profile can
// never produce an invalid simulation.
func (p Profile) Sanitized() Profile {
	def := Default()
	if !(p.DecelerationRate > 0 && p.DecelerationRate < 1) {
		p.DecelerationRate = def.DecelerationRate
	}
	if !(p.BounceResponse > 0) {
		p.BounceResponse = def.BounceResponse
	}
	if !(p.RubberBandCoefficient > 0 && p.RubberBandCoefficient <= 1) {
		p.RubberBandCoefficient = def.RubberBandCoefficient
	}
	if p.TrackerStrategy != StrategyNameRecurrence && p.TrackerStrategy != StrategyNameLSQ2 {
		p.TrackerStrategy = def.TrackerStrategy
	}
	return p
}

// Strategy returns the velocity tracker strategy the profile selects.
func (p Profile) Strategy() gestures.VelocityTrackerStrategy {
	if p.TrackerStrategy == StrategyNameLSQ2 {
		return gestures.StrategyLSQ2
	}
	return gestures.StrategyRecurrence
}
