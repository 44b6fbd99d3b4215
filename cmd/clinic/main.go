package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"clinic/internal/clinic/registry"
	"clinic/internal/clinic/service"
	"clinic/internal/clinic/session"
	"clinic/internal/platform/config"
	"clinic/internal/platform/logger"
)

// main runs the console front end on stdin and stdout. Logs go to stderr so
// they never interleave with the menus.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	reg, err := registry.New(registry.WithLogger(log))
	if err != nil {
		return err
	}
	svc, err := service.New(reg, service.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return session.New(svc, os.Stdin, os.Stdout).Run(ctx)
}
