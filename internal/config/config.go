// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "JACKETCHECK"

	DefaultTextTpl = "{{.AnswerIcon}} {{.Answer}}{{if .JacketType}}: {{.JacketType}}{{end}}"

	DefaultTooltipTpl = "{{.Reasoning}}\n" +
		"{{if .RainAdvice}}{{.RainAdvice}}\n{{end}}" +
		"{{loc \"Condition\"}}: {{.Condition}}\n" +
		"{{loc \"Temperature\"}}: {{.TempF}}°F ({{.TempC}}°C)\n" +
		"{{loc \"Feels like\"}}: {{.FeelsLikeF}}°F\n" +
		"{{loc \"Humidity\"}}: {{.Humidity}}\n" +
		"{{loc \"Location\"}}: {{.Location}}\n" +
		"{{loc \"Sunrise\"}}: {{timeFormat .SunriseTime \"15:04\"}}\n" +
		"{{loc \"Sunset\"}}: {{timeFormat .SunsetTime \"15:04\"}}\n" +
		"{{loc \"Updated\"}}: {{localizedTime .UpdateTime}}" +
		"{{if .JacketBlurb}}\n{{.JacketIconWithSpace}}{{.JacketBlurb}}{{end}}"
)

// Config represents the application's configuration structure.
type Config struct {
	// Location is either a free-form place name resolved through geocoding
	// search or a raw "lat,lon" pair. An empty location enables the GeoIP
	// fallback.
	Location string `fig:"location"`

	// Allowed values: imperial, metric. Display only, the decision core
	// always works in Fahrenheit.
	Units    string     `fig:"units" default:"imperial"`
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Intervals struct {
		WeatherUpdate time.Duration `fig:"weather_update" default:"15m"`
		Output        time.Duration `fig:"output" default:"30s"`
	} `fig:"intervals"`

	Templates struct {
		Text    string `fig:"text"`
		Tooltip string `fig:"tooltip"`
	} `fig:"templates"`

	GeoLocation struct {
		DisableGeoIP bool `fig:"disable_geoip"`
	} `fig:"geolocation"`
}

// NewFromFile loads the configuration from the given file, with environment
// overrides applied.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// New loads the default configuration with environment overrides applied.
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// Validate normalizes defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.Units != "imperial" && c.Units != "metric" {
		return fmt.Errorf("invalid units: %s", c.Units)
	}
	if c.Intervals.WeatherUpdate <= 0 {
		return fmt.Errorf("invalid weather update interval: %s", c.Intervals.WeatherUpdate)
	}
	if c.Intervals.Output <= 0 {
		return fmt.Errorf("invalid output interval: %s", c.Intervals.Output)
	}
	if c.Templates.Text == "" {
		c.Templates.Text = DefaultTextTpl
	}
	if c.Templates.Tooltip == "" {
		c.Templates.Tooltip = DefaultTooltipTpl
	}

	return nil
}
