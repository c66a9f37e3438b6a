package config

import (
	"github.com/alexisbeaulieu97/granular/internal/calendar"
	"github.com/alexisbeaulieu97/granular/internal/theme"
)

// Default year bounds, matching the date picker's own defaults.
const (
	DefaultMinYear = 1950
	DefaultMaxYear = 2050
)

// Config is the granular configuration document.
type Config struct {
	Date  DateConfig  `yaml:"date,omitempty"`
	Time  TimeConfig  `yaml:"time,omitempty"`
	Theme theme.Theme `yaml:"theme,omitempty"`
}

// DateConfig seeds the date picker.
type DateConfig struct {
	Initial *calendar.Date `yaml:"initial,omitempty"`
	MinYear int            `yaml:"min_year,omitempty" validate:"omitempty,min=1,max=9999"`
	MaxYear int            `yaml:"max_year,omitempty" validate:"omitempty,min=1,max=9999,gtefield=MinYear"`
}

// TimeConfig seeds the time picker.
type TimeConfig struct {
	Initial    *calendar.TimeOfDay `yaml:"initial,omitempty"`
	Use24Hour  bool                `yaml:"use_24_hour,omitempty"`
	MinuteStep int                 `yaml:"minute_step,omitempty" validate:"omitempty,minute_step"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields. Initial values stay nil, meaning "now".
func (c *Config) ApplyDefaults() {
	if c.Date.MinYear == 0 {
		c.Date.MinYear = DefaultMinYear
	}
	if c.Date.MaxYear == 0 {
		c.Date.MaxYear = DefaultMaxYear
	}
	if c.Time.MinuteStep == 0 {
		c.Time.MinuteStep = 1
	}
	c.Theme = theme.Default().Override(c.Theme)
}
