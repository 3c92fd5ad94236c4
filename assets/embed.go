package assets

import (
	_ "embed"
)

//go:embed demo.yaml
var demo_yaml []byte

// Demo returns the storyboard shown when no other storyboard is configured.
func Demo() []byte {
	return demo_yaml
}

//go:embed config.yaml
var config_yaml []byte

// DefaultConfig returns a commented configuration file with all defaults.
func DefaultConfig() []byte {
	return config_yaml
}
