package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"blit/app"
	"blit/gfx"
	"blit/hal"
	"blit/internal/buildinfo"
	"blit/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	version := flag.Bool("version", false, "Print version and exit.")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	var log hal.Logger = hal.NewLogger(os.Stderr)
	if cfg.Mode == config.ModeTerminal {
		// The terminal belongs to the surface.
		log = hal.NopLogger{}
	}
	scene, err := app.New(app.FromConfig(cfg), log)
	if err != nil {
		return err
	}

	gcfg := gfx.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		Scale:  cfg.Scale,
		TPS:    cfg.TPS,
	}

	switch cfg.Mode {
	case config.ModeHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		c, _, err := gfx.OpenHeadless(ctx, gcfg, hal.HeadlessConfig{Hz: cfg.Hz, Ticks: cfg.Ticks}, gfx.WithLogger(log))
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Run(app.Guard(log, scene.Frame))

	case config.ModeTerminal:
		c, err := gfx.OpenTerminal(gcfg, gfx.WithLogger(log))
		if err != nil {
			return err
		}
		defer c.Close()
		return c.Run(app.Guard(log, scene.Frame))

	default:
		return gfx.RunWindow(gcfg, func(c *gfx.Context) error {
			return c.Run(app.Guard(log, scene.Frame))
		}, gfx.WithLogger(log))
	}
}
