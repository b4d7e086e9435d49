// Package offer parses offer CLI flags and prints a vesting schedule.
package offer

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/vestplan/vestplan/internal/platform/cmd"
	"github.com/vestplan/vestplan/internal/split"
)

// Config holds offer command configuration.
type Config struct {
	ScoreScale   float64 `env:"VESTPLAN_SCORE_SCALE"   envDefault:"4"`
	FloorYears   float64 `env:"VESTPLAN_FLOOR_YEARS"   envDefault:"1"`
	SpanYears    float64 `env:"VESTPLAN_SPAN_YEARS"    envDefault:"5"`
	CliffPeriods int     `env:"VESTPLAN_CLIFF_PERIODS" envDefault:"4"`
	SetEquity    float64
	JSON         bool
}

// Policy assembles the vesting policy from the configured coefficients.
func (c Config) Policy() split.Policy {
	return split.Policy{
		ScoreScale:   c.ScoreScale,
		FloorYears:   c.FloorYears,
		SpanYears:    c.SpanYears,
		CliffPeriods: c.CliffPeriods,
	}
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Float64Var(&cfg.SetEquity, "equity", 0, "Equity fraction offered, greater than 0 and at most 1")
	fs.BoolVar(&cfg.JSON, "json", false, "Print the schedule as JSON")
	fs.Float64Var(&cfg.ScoreScale, "score-scale", cfg.ScoreScale, "Multiplier applied to the equity fraction")
	fs.Float64Var(&cfg.FloorYears, "floor-years", cfg.FloorYears, "Minimum vesting length in years")
	fs.Float64Var(&cfg.SpanYears, "span-years", cfg.SpanYears, "Additional vesting years scaled by the ratio")
	fs.IntVar(&cfg.CliffPeriods, "cliff-periods", cfg.CliffPeriods, "Number of cliff-sized periods in the vesting span")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the offer command and writes the schedule to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	calc, err := split.New(cfg.Policy())
	if err != nil {
		return fmt.Errorf("build calculator: %w", err)
	}
	result, err := calc.Calculate(cfg.SetEquity)
	if err != nil {
		return err
	}

	if cfg.JSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintf(out, "For a %.1f%% equity offer: vest over %.2f years (%d days) with a %.2f-year cliff (%d days).\n",
		result.SetEquity*100, result.VestingYears, result.VestingDays, result.CliffYears, result.CliffDays)
	return nil
}
