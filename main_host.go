//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"badge/app"
	"badge/badgeos/input"
	"badge/badgeos/program"
	"badge/hal"
)

func main() {
	var hcfg hal.HeadlessConfig
	var configPath, boot, mode, script string
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Step rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.StringVar(&script, "script", "", "Headless button taps, e.g. down@5,a@10,b@40.")
	flag.StringVar(&configPath, "config", "", "TOML config file.")
	flag.StringVar(&boot, "boot", "", "Program shown at power-on (menu, lynix, ccnb, socials, info, blinky).")
	flag.StringVar(&mode, "input", "", "Button handling: edge or level.")
	flag.Parse()

	cfg, err := loadConfig(configPath, boot, mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if hcfg.Script, err = hal.ParseScript(script); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	newApp := func(h hal.HAL) func() error { return app.New(ctx, h, cfg) }

	if hcfg.Enabled {
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file and flags, in that order.
func loadConfig(path, boot, mode string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if path != "" {
		if err := app.LoadConfig(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if boot != "" {
		id, err := program.ParseID(boot)
		if err != nil {
			return cfg, err
		}
		cfg.Boot = id
	}
	if mode != "" {
		m, err := input.ParseMode(mode)
		if err != nil {
			return cfg, err
		}
		cfg.Input = m
	}
	return cfg, cfg.Validate()
}
