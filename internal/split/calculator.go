// Package split derives equity vesting schedules from an offered equity
// fraction. The calculation is pure and deterministic: the same equity
// fraction and policy always produce the same schedule.
package split

import (
	"math"

	apperrors "github.com/vestplan/vestplan/internal/platform/errors"
)

// Result is a recommended vesting schedule for an equity offer.
type Result struct {
	SetEquity    float64 `json:"set_equity"`
	AvgScore     float64 `json:"avg_score"`
	AvgRatio     float64 `json:"avg_ratio"`
	VestingDays  int     `json:"vesting_days"`
	VestingYears float64 `json:"vesting_years"`
	CliffDays    int     `json:"cliff_days"`
	CliffYears   float64 `json:"cliff_years"`
}

// Calculator produces vesting schedules under a fixed policy.
type Calculator struct {
	policy Policy
}

// New returns a calculator for the given policy.
func New(policy Policy) (*Calculator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{policy: policy}, nil
}

// Policy returns the policy the calculator applies.
func (c *Calculator) Policy() Policy {
	if c == nil {
		return Policy{}
	}
	return c.policy
}

// Calculate derives the schedule for an equity fraction in (0, 1].
//
// The offer score grows linearly with equity and the schedule shrinks as
// the score grows. Day counts are whole: the cliff is rounded to the
// nearest day and the vesting period is rebuilt from it, so the vesting
// length is always an exact multiple of the cliff. Years are derived from
// the rounded day counts.
func (c *Calculator) Calculate(setEquity float64) (Result, error) {
	if c == nil {
		return Result{}, apperrors.E(apperrors.KindUnavailable, "calculator is not configured")
	}
	if math.IsNaN(setEquity) || math.IsInf(setEquity, 0) {
		return Result{}, apperrors.EK(apperrors.KindInvalidInput, "split.error.equity_not_finite", "set_equity must be a finite number")
	}
	if setEquity <= 0 {
		return Result{}, apperrors.EK(apperrors.KindInvalidInput, "split.error.equity_too_low", "set_equity must be greater than 0")
	}
	if setEquity > 1 {
		return Result{}, apperrors.EK(apperrors.KindInvalidInput, "split.error.equity_too_high", "set_equity must be at most 1")
	}

	avgScore := c.policy.ScoreScale * setEquity
	avgRatio := 1 / (1 + avgScore)
	rawDays := (c.policy.FloorYears + c.policy.SpanYears*avgRatio) * DaysPerYear

	cliffDays := int(math.Round(rawDays / float64(c.policy.CliffPeriods)))
	vestingDays := cliffDays * c.policy.CliffPeriods

	return Result{
		SetEquity:    setEquity,
		AvgScore:     avgScore,
		AvgRatio:     avgRatio,
		VestingDays:  vestingDays,
		VestingYears: float64(vestingDays) / DaysPerYear,
		CliffDays:    cliffDays,
		CliffYears:   float64(cliffDays) / DaysPerYear,
	}, nil
}
