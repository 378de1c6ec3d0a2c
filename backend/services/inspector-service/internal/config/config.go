package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "buildsense/backend/libs/config"
)

// Config defines inspector service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"INSPECTOR_HTTP_PORT"`
	} `yaml:"http"`
	Graph struct {
		URI      string `yaml:"uri" env:"NEO4J_URI"`
		User     string `yaml:"user" env:"NEO4J_USER"`
		Password string `yaml:"password" env:"NEO4J_PASSWORD"`
	} `yaml:"graph"`
	Influx struct {
		Host   string `yaml:"host" env:"INFLUX_HOST"`
		Token  string `yaml:"token" env:"INFLUX_TOKEN"`
		Org    string `yaml:"org" env:"INFLUX_ORG"`
		Bucket string `yaml:"bucket" env:"INFLUX_BUCKET"`
	} `yaml:"influx"`
	Sensors struct {
		ConfigFile string `yaml:"configFile" env:"SENSOR_CONFIG_FILE"`
	} `yaml:"sensors"`
	Auth struct {
		Secret string `yaml:"secret" env:"INSPECTOR_AUTH_SECRET"`
	} `yaml:"auth"`
	Query struct {
		Timeout time.Duration `yaml:"timeout" env:"INSPECTOR_QUERY_TIMEOUT"`
	} `yaml:"query"`
}

// Load reads configuration via shared helper.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8085"
	cfg.Graph.URI = "bolt://localhost:7687"
	cfg.Graph.User = "neo4j"
	cfg.Query.Timeout = 10 * time.Second

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Graph.URI) == "" {
		return nil, errors.New("config: graph uri required")
	}
	if cfg.InfluxEnabled() {
		if strings.TrimSpace(cfg.Influx.Org) == "" {
			return nil, errors.New("config: influx org required")
		}
		if strings.TrimSpace(cfg.Influx.Bucket) == "" {
			return nil, errors.New("config: influx bucket required")
		}
	}
	return cfg, nil
}

// InfluxEnabled reports whether the time-series store is configured.
func (c *Config) InfluxEnabled() bool {
	return strings.TrimSpace(c.Influx.Host) != ""
}

// QueryTimeout bounds each store round trip.
func (c *Config) QueryTimeout() time.Duration {
	if c.Query.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Query.Timeout
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8085"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
