package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: "0.0.0.0:8080",
			Mode: "release",
		},
	}
}

// Load reads a YAML config file, falling back to defaults when the file does
// not exist. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults().Server.Addr
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = defaults().Server.Mode
	}
	return cfg, nil
}
