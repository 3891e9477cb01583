// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Default peptide length bounds for MHC class I epitopes.
const (
	DefaultMinLength = 8
	DefaultMaxLength = 15
)

// DefaultWeightMode is the default short-peptide weight indexing.
const DefaultWeightMode = "clamp"

// Config is the root-level settings struct and is a mix of settings
// available in a settings file and those from the command line.
type Config struct {
	// the minimum accepted peptide length, inclusive
	MinLength int `mapstructure:"min-length"`

	// the maximum accepted peptide length, inclusive
	MaxLength int `mapstructure:"max-length"`

	// how weights are indexed for peptides shorter than the base
	// weight vector: "clamp" or "truncate"
	WeightMode string `mapstructure:"weight-mode"`

	// whether to log scoring diagnostics
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings (either
// from a settings file) and/or command line arguments.
func New() *Config {
	viper.SetDefault("min-length", DefaultMinLength)
	viper.SetDefault("max-length", DefaultMaxLength)
	viper.SetDefault("weight-mode", DefaultWeightMode)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if err := c.Validate(); err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	return &c
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("min-length %d is not positive", c.MinLength)
	}
	if c.MaxLength < c.MinLength {
		return fmt.Errorf("max-length %d is less than min-length %d", c.MaxLength, c.MinLength)
	}
	switch c.WeightMode {
	case "clamp", "truncate":
	default:
		return fmt.Errorf("weight-mode %q is not clamp or truncate", c.WeightMode)
	}
	return nil
}
