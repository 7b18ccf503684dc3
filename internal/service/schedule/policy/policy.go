// Package policy implements the review interval rule. Everything here is pure:
// no I/O, no clock reads, no shared state.
package policy

import (
	"fmt"
	"math"

	"github.com/heartmarshall/review-scheduler/internal/domain"
)

// Parameters holds the interval rule configuration.
type Parameters struct {
	Mode              domain.PolicyMode
	PassThreshold     float64
	FailThreshold     float64
	GrowthFactor      float64
	MaxIntervalDays   int
	FixedIntervalDays int
}

// DefaultParameters returns the scored rule with its documented defaults.
func DefaultParameters() Parameters {
	return FromConfig(domain.DefaultScheduleConfig())
}

// FromConfig extracts the policy part of a schedule configuration.
func FromConfig(cfg domain.ScheduleConfig) Parameters {
	return Parameters{
		Mode:              cfg.Mode,
		PassThreshold:     cfg.PassThreshold,
		FailThreshold:     cfg.FailThreshold,
		GrowthFactor:      cfg.GrowthFactor,
		MaxIntervalDays:   cfg.MaxIntervalDays,
		FixedIntervalDays: cfg.FixedIntervalDays,
	}
}

// Validate checks that the parameters describe a usable rule.
func (p Parameters) Validate() error {
	if !p.Mode.IsValid() {
		return fmt.Errorf("unknown policy mode: %q", p.Mode)
	}
	if p.Mode == domain.PolicyModeFixed {
		if p.FixedIntervalDays < 1 {
			return fmt.Errorf("fixed interval must be >= 1 day, got %d", p.FixedIntervalDays)
		}
		return nil
	}

	for name, v := range map[string]float64{
		"pass threshold": p.PassThreshold,
		"fail threshold": p.FailThreshold,
		"growth factor":  p.GrowthFactor,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s is invalid: %v", name, v)
		}
	}
	if p.FailThreshold <= 0 || p.FailThreshold >= p.PassThreshold || p.PassThreshold > 1 {
		return fmt.Errorf("thresholds must satisfy 0 < fail < pass <= 1, got fail=%v pass=%v",
			p.FailThreshold, p.PassThreshold)
	}
	if p.GrowthFactor < 1 {
		return fmt.Errorf("growth factor must be >= 1, got %v", p.GrowthFactor)
	}
	if p.MaxIntervalDays < 1 {
		return fmt.Errorf("max interval must be >= 1 day, got %d", p.MaxIntervalDays)
	}
	return nil
}

// NextInterval maps (current interval, score, attempts so far) to the next
// interval in days.
//
//	first attempt        -> 1
//	score <  fail        -> 1
//	fail <= score < pass -> max(1, current), capped
//	score >= pass        -> max(1, round(current * growth)), capped
//
// In fixed mode the result is always FixedIntervalDays.
func NextInterval(p Parameters, currentIntervalDays int, score float64, attemptCount int) (int, error) {
	if !domain.ValidScore(score) {
		return 0, domain.NewInvalidScoreError(score)
	}
	if currentIntervalDays < 0 {
		return 0, domain.NewInvariantError("interval %d < 0", currentIntervalDays)
	}
	if attemptCount < 0 {
		return 0, domain.NewInvariantError("attempt count %d < 0", attemptCount)
	}

	if p.Mode == domain.PolicyModeFixed {
		return p.FixedIntervalDays, nil
	}

	switch {
	case attemptCount == 0:
		return 1, nil
	case score < p.FailThreshold:
		return 1, nil
	case score < p.PassThreshold:
		return capInterval(max(1, currentIntervalDays), p.MaxIntervalDays), nil
	default:
		grown := math.Round(float64(currentIntervalDays) * p.GrowthFactor)
		if grown > float64(p.MaxIntervalDays) {
			return p.MaxIntervalDays, nil
		}
		return capInterval(max(1, int(grown)), p.MaxIntervalDays), nil
	}
}

// capInterval bounds days by maxDays. The cap wins over "never decrease" when
// an interval above the cap was stored before the cap was lowered.
func capInterval(days, maxDays int) int {
	return min(days, maxDays)
}
