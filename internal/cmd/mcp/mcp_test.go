package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ScoreScale != 4 || cfg.FloorYears != 1 || cfg.SpanYears != 5 || cfg.CliffPeriods != 4 {
		t.Fatalf("unexpected default policy coefficients: %+v", cfg)
	}
	if err := cfg.Policy().Validate(); err != nil {
		t.Fatalf("expected valid default policy, got %v", err)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("VESTPLAN_SPAN_YEARS", "6")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-cliff-periods", "2"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.SpanYears != 6 {
		t.Fatalf("expected env span years 6, got %v", cfg.SpanYears)
	}
	if cfg.CliffPeriods != 2 {
		t.Fatalf("expected flag cliff periods 2, got %d", cfg.CliffPeriods)
	}
}
