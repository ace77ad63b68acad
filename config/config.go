// Package config loads the watchface settings from a YAML file.
package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ardnew/decimalwatch/dectime"
	"github.com/ardnew/decimalwatch/display"
	"github.com/ardnew/decimalwatch/weather"
)

var (
	ErrInterval = errors.New("weather interval must divide the hour")
	ErrSize     = errors.New("display size out of range")
)

type Config struct {
	Mode     dectime.Mode `yaml:"mode"`
	Timezone string       `yaml:"timezone"`

	Weather struct {
		Interval    int    `yaml:"interval"`
		Temperature string `yaml:"temperature"`
		Conditions  string `yaml:"conditions"`
	} `yaml:"weather"`

	Display struct {
		Width  int16 `yaml:"width"`
		Height int16 `yaml:"height"`
	} `yaml:"display"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.Mode = dectime.ModeDecimal
	c.Weather.Interval = weather.DefaultInterval
	c.Weather.Temperature = "--"
	c.Weather.Conditions = "No companion"
	c.Display.Width = display.DefaultWidth
	c.Display.Height = display.DefaultHeight
	c.Log.Level = "info"
	return &c
}

// Load reads the YAML file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); nil != err {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges and names.
func (c *Config) Validate() error {
	if 0 >= c.Weather.Interval || 0 != 60%c.Weather.Interval {
		return errors.Wrapf(ErrInterval, "interval %d", c.Weather.Interval)
	}
	if 0 >= c.Display.Width || 0 >= c.Display.Height {
		return errors.Wrapf(ErrSize, "%dx%d", c.Display.Width, c.Display.Height)
	}
	if _, err := log.ParseLevel(c.Log.Level); nil != err {
		return errors.Wrap(err, "log level")
	}
	if _, err := c.Location(); nil != err {
		return err
	}
	return nil
}

// Location returns the configured time zone, or time.Local when none is set.
func (c *Config) Location() (*time.Location, error) {
	if "" == c.Timezone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if nil != err {
		return nil, errors.Wrapf(err, "timezone %q", c.Timezone)
	}
	return loc, nil
}

// Level returns the configured log level; Validate guarantees it parses.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if nil != err {
		return log.InfoLevel
	}
	return lvl
}

// Report returns the reply the loopback companion answers with.
func (c *Config) Report() weather.Report {
	return weather.Report{
		Temperature: c.Weather.Temperature,
		Conditions:  c.Weather.Conditions,
	}
}
