package srs

import "fmt"

// MinEaseFactor is the hard lower bound for the ease factor after every
// update. It is fixed at the classic SM-2 floor and is not configurable.
const MinEaseFactor = 1.3

// Parameters are the tunable bounds of the scheduling algorithm.
type Parameters struct {
	InitialEaseFactor   float64 `json:"initial_ease_factor" mapstructure:"initial_ease_factor"`
	MinimumIntervalDays int     `json:"minimum_interval_days" mapstructure:"minimum_interval_days"`
	MaximumIntervalDays int     `json:"maximum_interval_days" mapstructure:"maximum_interval_days"`
	EasyBonus           float64 `json:"easy_bonus" mapstructure:"easy_bonus"`
	HardPenalty         float64 `json:"hard_penalty" mapstructure:"hard_penalty"`
}

// DefaultParameters matches the defaults the application ships with.
var DefaultParameters = Parameters{
	InitialEaseFactor:   2.5,
	MinimumIntervalDays: 1,
	MaximumIntervalDays: 365,
	EasyBonus:           1.3,
	HardPenalty:         0.8,
}

// Validate checks the parameter bounds required by the algorithm.
// All violations wrap ErrInvalidParameters.
func (p Parameters) Validate() error {
	if p.MinimumIntervalDays < 1 {
		return fmt.Errorf("%w: minimum interval %d must be at least 1 day", ErrInvalidParameters, p.MinimumIntervalDays)
	}
	if p.MaximumIntervalDays < p.MinimumIntervalDays {
		return fmt.Errorf("%w: maximum interval %d below minimum %d", ErrInvalidParameters, p.MaximumIntervalDays, p.MinimumIntervalDays)
	}
	if p.EasyBonus <= 1.0 {
		return fmt.Errorf("%w: easy bonus %v must be greater than 1.0", ErrInvalidParameters, p.EasyBonus)
	}
	if p.HardPenalty <= 0 || p.HardPenalty >= 1.0 {
		return fmt.Errorf("%w: hard penalty %v must be between 0 and 1.0 exclusive", ErrInvalidParameters, p.HardPenalty)
	}
	if p.InitialEaseFactor < MinEaseFactor {
		return fmt.Errorf("%w: initial ease factor %v below floor %v", ErrInvalidParameters, p.InitialEaseFactor, MinEaseFactor)
	}
	return nil
}
