// Package main runs a small demonstration of tagged variant construction and dispatch.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	democmd "github.com/clockworklabs/SpacetimeDB/crates/discunion-go/internal/cmd/demo"
	"github.com/clockworklabs/SpacetimeDB/crates/discunion-go/internal/config"
)

func main() {
	cfg, err := democmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := democmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
