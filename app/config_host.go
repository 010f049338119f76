//go:build !tinygo

package app

import (
	"fmt"
	"strings"
	"time"

	"badge/badgeos/input"
	"badge/badgeos/program"

	"github.com/BurntSushi/toml"
)

// fileConfig is the TOML layout. Durations are strings such as "250ms".
type fileConfig struct {
	Boot          string `toml:"boot"`
	Input         string `toml:"input"`
	Debounce      string `toml:"debounce"`
	ProgramPeriod string `toml:"program_period"`
	MenuPeriod    string `toml:"menu_period"`
	NotFoundDwell string `toml:"notfound_dwell"`
	BlinkPeriod   string `toml:"blink_period"`
	SerialPoll    string `toml:"serial_poll"`
}

// LoadConfig overlays the TOML file at path onto cfg. Keys that are absent
// keep their current values; unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err := decodeConfig(md, fc, err, cfg); err != nil {
		return fmt.Errorf("app: config %s: %w", path, err)
	}
	return nil
}

// parseConfig is LoadConfig for an in-memory document.
func parseConfig(doc string, cfg *Config) error {
	var fc fileConfig
	md, err := toml.Decode(doc, &fc)
	if err := decodeConfig(md, fc, err, cfg); err != nil {
		return fmt.Errorf("app: config: %w", err)
	}
	return nil
}

func decodeConfig(md toml.MetaData, fc fileConfig, err error, cfg *Config) error {
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys %s", strings.Join(keys, ", "))
	}
	return fc.apply(cfg)
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Boot != "" {
		id, err := program.ParseID(fc.Boot)
		if err != nil {
			return err
		}
		cfg.Boot = id
	}
	if fc.Input != "" {
		m, err := input.ParseMode(fc.Input)
		if err != nil {
			return err
		}
		cfg.Input = m
	}
	for _, d := range []struct {
		key string
		src string
		dst *time.Duration
	}{
		{"debounce", fc.Debounce, &cfg.Debounce},
		{"program_period", fc.ProgramPeriod, &cfg.ProgramPeriod},
		{"menu_period", fc.MenuPeriod, &cfg.MenuPeriod},
		{"notfound_dwell", fc.NotFoundDwell, &cfg.NotFoundDwell},
		{"blink_period", fc.BlinkPeriod, &cfg.BlinkPeriod},
		{"serial_poll", fc.SerialPoll, &cfg.SerialPoll},
	} {
		if d.src == "" {
			continue
		}
		v, err := time.ParseDuration(d.src)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}
	return nil
}
