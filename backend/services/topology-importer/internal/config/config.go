package config

import (
	"errors"
	"strings"

	libconfig "buildsense/backend/libs/config"
)

// Config defines topology importer configuration.
type Config struct {
	Graph struct {
		URI      string `yaml:"uri" env:"NEO4J_URI"`
		User     string `yaml:"user" env:"NEO4J_USER"`
		Password string `yaml:"password" env:"NEO4J_PASSWORD"`
	} `yaml:"graph"`
	Sensors struct {
		ConfigFile string `yaml:"configFile" env:"SENSOR_CONFIG_FILE"`
	} `yaml:"sensors"`
	Import struct {
		ElementsFile string `yaml:"elementsFile" env:"IMPORTER_ELEMENTS_FILE"`
	} `yaml:"import"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.Graph.URI = "bolt://localhost:7687"
	cfg.Graph.User = "neo4j"

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Graph.URI) == "" {
		return nil, errors.New("config: graph uri required")
	}
	if strings.TrimSpace(cfg.Import.ElementsFile) == "" {
		return nil, errors.New("config: elements file required")
	}
	return cfg, nil
}
