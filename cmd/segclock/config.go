package main

import (
	"fmt"
	"os"

	"github.com/svanberg/segclock/internal/display"
	"github.com/svanberg/segclock/internal/sevseg"
	"gopkg.in/yaml.v3"
)

const (
	defaultBrightness = 15
	defaultTimeFormat = "15.04"
	defaultListen     = ":8090"
)

type Config struct {
	Pins struct {
		Data   string `yaml:"data"`
		Clock  string `yaml:"clock"`
		Select string `yaml:"select"`
	} `yaml:"pins"`
	Digits int `yaml:"digits"`
	// Pointer so an explicit brightness of 0 (dimmest) survives defaulting.
	Brightness *int   `yaml:"brightness"`
	TimeFormat string `yaml:"timeFormat"`
	Listen     string `yaml:"listen"`
}

func (c *Config) DisplayConfig() display.Config {
	return display.Config{
		DataPin:   c.Pins.Data,
		ClockPin:  c.Pins.Clock,
		SelectPin: c.Pins.Select,
		Digits:    c.Digits,
	}
}

func (c *Config) brightness() byte {
	return byte(*c.Brightness)
}

func getConfig(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Pins.Data == "" {
		return nil, fmt.Errorf("data pin is missing")
	}
	if c.Pins.Clock == "" {
		return nil, fmt.Errorf("clock pin is missing")
	}
	if c.Pins.Select == "" {
		return nil, fmt.Errorf("select pin is missing")
	}
	if c.Digits == 0 {
		c.Digits = sevseg.MinDigits
	}
	if c.Digits < sevseg.MinDigits || c.Digits > sevseg.MaxDigits {
		return nil, fmt.Errorf("digits must be between %d and %d", sevseg.MinDigits, sevseg.MaxDigits)
	}
	if c.Brightness == nil {
		b := defaultBrightness
		c.Brightness = &b
	}
	if *c.Brightness < 0 || *c.Brightness > int(sevseg.IntensityMax) {
		return nil, fmt.Errorf("brightness must be between 0 and %d", sevseg.IntensityMax)
	}
	if c.TimeFormat == "" {
		c.TimeFormat = defaultTimeFormat
	}
	if c.Listen == "" {
		c.Listen = defaultListen
	}

	return c, nil
}
