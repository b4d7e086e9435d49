// Package mcp parses MCP command flags and launches the stdio server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/vestplan/vestplan/internal/platform/cmd"
	"github.com/vestplan/vestplan/internal/services/mcp/service"
	"github.com/vestplan/vestplan/internal/split"
)

// Config holds MCP command configuration.
type Config struct {
	ScoreScale   float64 `env:"VESTPLAN_SCORE_SCALE"   envDefault:"4"`
	FloorYears   float64 `env:"VESTPLAN_FLOOR_YEARS"   envDefault:"1"`
	SpanYears    float64 `env:"VESTPLAN_SPAN_YEARS"    envDefault:"5"`
	CliffPeriods int     `env:"VESTPLAN_CLIFF_PERIODS" envDefault:"4"`
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
	fs.Float64Var(&cfg.ScoreScale, "score-scale", cfg.ScoreScale, "Multiplier applied to the equity fraction")
	fs.Float64Var(&cfg.FloorYears, "floor-years", cfg.FloorYears, "Minimum vesting length in years")
	fs.Float64Var(&cfg.SpanYears, "span-years", cfg.SpanYears, "Additional vesting years scaled by the ratio")
	fs.IntVar(&cfg.CliffPeriods, "cliff-periods", cfg.CliffPeriods, "Number of cliff-sized periods in the vesting span")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP stdio server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(runCtx context.Context) error {
		return service.Run(runCtx, service.Config{Policy: cfg.Policy()})
	})
}
