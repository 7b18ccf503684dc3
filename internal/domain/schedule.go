package domain

import "time"

// ScheduleConfig holds the scheduler parameters (pure domain type).
type ScheduleConfig struct {
	Mode              PolicyMode
	PassThreshold     float64
	FailThreshold     float64
	GrowthFactor      float64
	MaxIntervalDays   int
	FixedIntervalDays int
	MaxRetries        int
	RetryDelay        time.Duration
	CommitTimeout     time.Duration // 0 disables the wall-clock bound
}

// DefaultScheduleConfig returns the documented defaults.
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		Mode:              PolicyModeScored,
		PassThreshold:     0.8,
		FailThreshold:     0.6,
		GrowthFactor:      2.0,
		MaxIntervalDays:   60,
		FixedIntervalDays: 3,
		MaxRetries:        5,
		RetryDelay:        2 * time.Millisecond,
		CommitTimeout:     2 * time.Second,
	}
}

// ReconcileStats summarizes one index reconciliation pass.
type ReconcileStats struct {
	Owners   int
	Records  int
	Duration time.Duration
}
