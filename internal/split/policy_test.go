package split

import (
	"math"
	"testing"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsBrokenPolicies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "zero score scale", policy: Policy{ScoreScale: 0, FloorYears: 1, SpanYears: 5, CliffPeriods: 4}},
		{name: "negative score scale", policy: Policy{ScoreScale: -4, FloorYears: 1, SpanYears: 5, CliffPeriods: 4}},
		{name: "nan score scale", policy: Policy{ScoreScale: math.NaN(), FloorYears: 1, SpanYears: 5, CliffPeriods: 4}},
		{name: "negative floor", policy: Policy{ScoreScale: 4, FloorYears: -1, SpanYears: 5, CliffPeriods: 4}},
		{name: "infinite span", policy: Policy{ScoreScale: 4, FloorYears: 1, SpanYears: math.Inf(1), CliffPeriods: 4}},
		{name: "zero length schedule", policy: Policy{ScoreScale: 4, FloorYears: 0, SpanYears: 0, CliffPeriods: 4}},
		{name: "zero cliff periods", policy: Policy{ScoreScale: 4, FloorYears: 1, SpanYears: 5, CliffPeriods: 0}},
		{name: "negative cliff periods", policy: Policy{ScoreScale: 4, FloorYears: 1, SpanYears: 5, CliffPeriods: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.policy.Validate(); err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
		})
	}
}

func TestCliffFraction(t *testing.T) {
	t.Parallel()

	if got := DefaultPolicy().CliffFraction(); got != 0.25 {
		t.Fatalf("CliffFraction() = %v, want 0.25", got)
	}
	if got := (Policy{CliffPeriods: 2}).CliffFraction(); got != 0.5 {
		t.Fatalf("CliffFraction() = %v, want 0.5", got)
	}
	if got := (Policy{}).CliffFraction(); got != 0 {
		t.Fatalf("CliffFraction() = %v, want 0", got)
	}
}
