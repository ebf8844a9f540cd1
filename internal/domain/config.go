package domain

import (
	"fmt"
	"unicode/utf8"
)

// ColorMode controls whether terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes enumerates all recognized color modes.
var ValidColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

const maxCurrencyLen = 4

// Config holds settings loaded from .inventory.yaml.
type Config struct {
	Currency string       `yaml:"currency" json:"currency,omitempty"`
	Color    ColorMode    `yaml:"color"    json:"color,omitempty"`
	Stock    []StockEntry `yaml:"stock"    json:"stock,omitempty"`
}

// StockEntry is a product seeded into the inventory at startup. Its values go
// through the same validation as products added interactively.
type StockEntry struct {
	Name     string  `yaml:"name"     json:"name"`
	Price    float64 `yaml:"price"    json:"price"`
	Quantity int     `yaml:"quantity" json:"quantity"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{Currency: "$", Color: ColorAuto}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.Color != "" {
		valid := false
		for _, m := range ValidColorModes {
			if c.Color == m {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown color mode %q (valid: auto, always, never)", c.Color)
		}
	}

	if n := utf8.RuneCountInString(c.Currency); n > maxCurrencyLen {
		return fmt.Errorf("currency %q is too long (%d characters, max %d)", c.Currency, n, maxCurrencyLen)
	}

	return nil
}
