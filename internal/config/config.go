package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a balance file, filling anything left unset from Default.
func Load(path string) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Balance{}, err
	}
	return cfg, nil
}
