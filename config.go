package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config covers both front ends: the terminal UI and the web companion.
type Config struct {
	// Terminal UI.
	Accent        string   `koanf:"accent" yaml:"accent"`
	Mouse         bool     `koanf:"mouse" yaml:"mouse"`
	ReducedMotion bool     `koanf:"reduced_motion" yaml:"reduced_motion"`
	Phrases       []string `koanf:"phrases" yaml:"phrases"`

	// Web companion.
	Addr   string `koanf:"addr" yaml:"addr"`
	DBPath string `koanf:"db_path" yaml:"db_path"`

	SMTPHost string `koanf:"smtp_host" yaml:"smtp_host"`
	SMTPPort string `koanf:"smtp_port" yaml:"smtp_port"`
	SMTPUser string `koanf:"smtp_user" yaml:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass" yaml:"smtp_pass"`
	ToEmail  string `koanf:"to_email" yaml:"to_email"`

	AdminUsername string `koanf:"admin_username" yaml:"admin_username"`
	AdminPassword string `koanf:"admin_password" yaml:"admin_password"`
}

func DefaultConfig() *Config {
	return &Config{
		Accent:  "205",
		Mouse:   true,
		Phrases: TypedPhrases,
		Addr:    ":8080",
		DBPath:  "zach-term.db",
	}
}

// LoadConfig reads the optional YAML config file, then overlays
// ZACHTERM_* environment variable overrides.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("ZACHTERM_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ZACHTERM_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path, used by
// -init to drop a starter config.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if len(c.Phrases) == 0 {
		return fmt.Errorf("phrases must not be empty")
	}
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	return nil
}
