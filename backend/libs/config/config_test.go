package config

import (
	"testing"
	"time"
)

type testConfig struct {
	HTTP struct {
		Port string `yaml:"port"`
	} `yaml:"http"`
	Graph struct {
		URI string `yaml:"uri" env:"TESTCFG_GRAPH_URI"`
	} `yaml:"graph"`
	Query struct {
		Timeout time.Duration `yaml:"timeout" env:"TESTCFG_QUERY_TIMEOUT"`
	} `yaml:"query"`
	Limit int `yaml:"limit"`
}

func TestLoadConfigKeepsDefaultsWithoutEnv(t *testing.T) {
	cfg := &testConfig{}
	cfg.HTTP.Port = "8085"
	cfg.Query.Timeout = 10 * time.Second

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "8085" || cfg.Query.Timeout != 10*time.Second {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadConfigOverridesFromNestedEnvKeys(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LIMIT", "250")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Port != "9090" {
		t.Fatalf("nested key ignored: %s", cfg.HTTP.Port)
	}
	if cfg.Limit != 250 {
		t.Fatalf("int parse failed: %d", cfg.Limit)
	}
}

func TestLoadConfigHonorsExplicitEnvTag(t *testing.T) {
	t.Setenv("TESTCFG_GRAPH_URI", "bolt://graph:7687")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Graph.URI != "bolt://graph:7687" {
		t.Fatalf("env tag ignored: %s", cfg.Graph.URI)
	}
}

func TestLoadConfigParsesDurations(t *testing.T) {
	t.Setenv("TESTCFG_QUERY_TIMEOUT", "2m30s")

	cfg := &testConfig{}
	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Query.Timeout != 2*time.Minute+30*time.Second {
		t.Fatalf("duration parse failed: %v", cfg.Query.Timeout)
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("TESTCFG_QUERY_TIMEOUT", "soon")

	if err := LoadConfig(&testConfig{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigRejectsNonStructTarget(t *testing.T) {
	if err := LoadConfig(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
	v := 1
	if err := LoadConfig(&v); err == nil {
		t.Fatal("expected error for non-struct target")
	}
}
