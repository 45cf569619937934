package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// ConfigFile is the project configuration file name, scaffolded by Init
// and read by Build.
const ConfigFile = "raspy.yaml"

// Config describes a RAS data project.
type Config struct {
	Project   string   `yaml:"project"`
	DataDirs  []string `yaml:"data_dirs"`
	OutputDir string   `yaml:"output_dir"`
}

// LoadConfig reads a project configuration, filling in defaults for
// fields left unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(cfg.DataDirs) == 0 {
		cfg.DataDirs = []string{"data"}
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join("generated", "json")
	}
	return &cfg, nil
}
