package core

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "exercises.config.yml"

type Config struct {
	Env          string `yaml:"env" split_words:"true"`
	Host         string `yaml:"host" split_words:"true"`
	Port         int    `yaml:"port" split_words:"true"`
	Debug        bool   `yaml:"debug" split_words:"true"`
	DebugHeaders bool   `yaml:"debugHeaders" split_words:"true"`
	LogLevel     string `yaml:"logLevel" split_words:"true"`
	LogEncoding  string `yaml:"logEncoding" split_words:"true"`
	TemplateDir  string `yaml:"templateDir" split_words:"true"`
	StoryFile    string `yaml:"storyFile" split_words:"true"`
	Gzip         bool   `yaml:"gzip" split_words:"true"`
	Metrics      bool   `yaml:"metrics" split_words:"true"`
}

func DefaultConfig() Config {
	return Config{
		Env:         "dev",
		Host:        "127.0.0.1",
		Port:        5000,
		LogLevel:    "info",
		LogEncoding: "console",
		Gzip:        true,
		Metrics:     true,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies
// EXERCISES_* environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := envconfig.Process("EXERCISES", &cfg); err != nil {
		return cfg, fmt.Errorf("environment overrides: %w", err)
	}

	if cfg.Env == "" {
		cfg.Env = "dev"
	}
	if cfg.Env != "dev" && cfg.Env != "prod" {
		return cfg, fmt.Errorf("env must be dev or prod, got %q", cfg.Env)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) IsDev() bool {
	return c.Env == "dev"
}
