// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("defaults are applied", func(t *testing.T) {
		conf, err := New()
		if err != nil {
			t.Fatalf("failed to create config: %s", err)
		}
		if conf.Units != "imperial" {
			t.Errorf("expected default units to be imperial, got %q", conf.Units)
		}
		if conf.Intervals.WeatherUpdate != 15*time.Minute {
			t.Errorf("expected default weather update interval to be 15m, got %s",
				conf.Intervals.WeatherUpdate)
		}
		if conf.Intervals.Output != 30*time.Second {
			t.Errorf("expected default output interval to be 30s, got %s", conf.Intervals.Output)
		}
		if conf.Templates.Text != DefaultTextTpl {
			t.Errorf("expected default text template, got %q", conf.Templates.Text)
		}
		if conf.Templates.Tooltip != DefaultTooltipTpl {
			t.Errorf("expected default tooltip template, got %q", conf.Templates.Tooltip)
		}
	})
}

func TestNewFromFile(t *testing.T) {
	t.Run("a config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("location: \"Chicago, IL\"\nunits: metric\n" +
			"intervals:\n  weather_update: 5m\n  output: 10s\n")
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
			t.Fatalf("failed to write config file: %s", err)
		}

		conf, err := NewFromFile(dir, "config.yaml")
		if err != nil {
			t.Fatalf("failed to load config from file: %s", err)
		}
		if conf.Location != "Chicago, IL" {
			t.Errorf("expected location to be 'Chicago, IL', got %q", conf.Location)
		}
		if conf.Units != "metric" {
			t.Errorf("expected units to be metric, got %q", conf.Units)
		}
		if conf.Intervals.WeatherUpdate != 5*time.Minute {
			t.Errorf("expected weather update interval to be 5m, got %s",
				conf.Intervals.WeatherUpdate)
		}
	})
	t.Run("a missing config file fails", func(t *testing.T) {
		if _, err := NewFromFile(t.TempDir(), "missing.yaml"); err == nil {
			t.Fatal("expected error for missing config file")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("invalid units are rejected", func(t *testing.T) {
		conf := &Config{Units: "kelvin"}
		conf.Intervals.WeatherUpdate = time.Minute
		conf.Intervals.Output = time.Second
		if err := conf.Validate(); err == nil {
			t.Fatal("expected error for invalid units")
		}
	})
	t.Run("non-positive intervals are rejected", func(t *testing.T) {
		conf := &Config{Units: "imperial"}
		conf.Intervals.Output = time.Second
		if err := conf.Validate(); err == nil {
			t.Fatal("expected error for non-positive weather update interval")
		}
	})
	t.Run("empty templates fall back to the defaults", func(t *testing.T) {
		conf := &Config{Units: "imperial"}
		conf.Intervals.WeatherUpdate = time.Minute
		conf.Intervals.Output = time.Second
		if err := conf.Validate(); err != nil {
			t.Fatalf("expected config to validate, got %s", err)
		}
		if conf.Templates.Text != DefaultTextTpl {
			t.Errorf("expected text template fallback, got %q", conf.Templates.Text)
		}
	})
}
