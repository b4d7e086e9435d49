// Package main provides a CLI for turning an equity offer into a vesting schedule.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vestplan/vestplan/internal/platform/config"

	offercmd "github.com/vestplan/vestplan/internal/cmd/offer"
)

func main() {
	cfg, err := offercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := offercmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
