package split

import (
	"errors"
	"math"
)

// DaysPerYear converts schedule lengths between days and years.
const DaysPerYear = 365

// Policy holds the coefficients that shape recommended schedules.
//
// ScoreScale maps the equity fraction to an offer score. FloorYears and
// SpanYears bound the schedule length: a vanishing offer approaches
// FloorYears+SpanYears while a full grant approaches the floor plus the
// span damped by the score. CliffPeriods divides the schedule into whole
// cliff-sized periods, so the cliff is always exactly 1/CliffPeriods of
// the vesting length.
type Policy struct {
	ScoreScale   float64
	FloorYears   float64
	SpanYears    float64
	CliffPeriods int
}

// DefaultPolicy returns the standard schedule policy: offers score up to 4,
// schedules between one and six years, and a one-quarter cliff.
func DefaultPolicy() Policy {
	return Policy{
		ScoreScale:   4,
		FloorYears:   1,
		SpanYears:    5,
		CliffPeriods: 4,
	}
}

// Validate reports whether the policy can produce well-formed schedules.
func (p Policy) Validate() error {
	if math.IsNaN(p.ScoreScale) || math.IsInf(p.ScoreScale, 0) || p.ScoreScale <= 0 {
		return errors.New("score scale must be a positive finite number")
	}
	if math.IsNaN(p.FloorYears) || math.IsInf(p.FloorYears, 0) || p.FloorYears < 0 {
		return errors.New("floor years must be a non-negative finite number")
	}
	if math.IsNaN(p.SpanYears) || math.IsInf(p.SpanYears, 0) || p.SpanYears < 0 {
		return errors.New("span years must be a non-negative finite number")
	}
	if p.FloorYears+p.SpanYears <= 0 {
		return errors.New("floor years and span years must not both be zero")
	}
	if p.CliffPeriods < 1 {
		return errors.New("cliff periods must be at least 1")
	}
	return nil
}

// CliffFraction returns the cliff share of the vesting period.
func (p Policy) CliffFraction() float64 {
	if p.CliffPeriods < 1 {
		return 0
	}
	return 1 / float64(p.CliffPeriods)
}
