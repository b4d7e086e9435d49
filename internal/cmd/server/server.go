// Package server parses calculator service flags and launches the web server.
package server

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/vestplan/vestplan/internal/platform/cmd"
	"github.com/vestplan/vestplan/internal/services/web"
	"github.com/vestplan/vestplan/internal/split"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr       string   `env:"VESTPLAN_SERVER_HTTP_ADDR"       envDefault:"localhost:8080"`
	AllowedOrigins []string `env:"VESTPLAN_SERVER_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ScoreScale     float64  `env:"VESTPLAN_SCORE_SCALE"            envDefault:"4"`
	FloorYears     float64  `env:"VESTPLAN_FLOOR_YEARS"            envDefault:"1"`
	SpanYears      float64  `env:"VESTPLAN_SPAN_YEARS"             envDefault:"5"`
	CliffPeriods   int      `env:"VESTPLAN_CLIFF_PERIODS"          envDefault:"4"`
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
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Float64Var(&cfg.ScoreScale, "score-scale", cfg.ScoreScale, "Multiplier applied to the equity fraction")
	fs.Float64Var(&cfg.FloorYears, "floor-years", cfg.FloorYears, "Minimum vesting length in years")
	fs.Float64Var(&cfg.SpanYears, "span-years", cfg.SpanYears, "Additional vesting years scaled by the ratio")
	fs.IntVar(&cfg.CliffPeriods, "cliff-periods", cfg.CliffPeriods, "Number of cliff-sized periods in the vesting span")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the calculator web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(runCtx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:       cfg.HTTPAddr,
			AllowedOrigins: cfg.AllowedOrigins,
			Policy:         cfg.Policy(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		return server.ListenAndServe(runCtx)
	})
}
