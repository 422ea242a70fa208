package scene

import (
	_ "embed"
)

//go:embed demo.yaml
var demoYAML []byte

// Demo returns the built-in sample scene.
func Demo() *Config {
	cfg, err := Parse(demoYAML)
	if err != nil {
		panic(err)
	}
	return cfg
}
