package config

import (
	_ "embed"
)

//go:embed embedded/defaults.yaml
var defaultConfig []byte

// DefaultConfigContent returns the embedded defaults
func DefaultConfigContent() string {
	return string(defaultConfig)
}
