package shared

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rwblickhan/linty/internal/rules"
)

// DefaultPath is where the config is looked up when no explicit path is
// given: a dot-prefixed file in the working directory.
const DefaultPath = ".lintyconfig.json"

type Config struct {
	Rules   []rules.Definition `json:"rules" yaml:"rules" toml:"rules"`
	Waivers []rules.Waiver     `json:"waivers,omitempty" yaml:"waivers,omitempty" toml:"waivers,omitempty"`

	Logging struct {
		Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"` // "json"|"text"; empty picks by terminal
		Level  string `json:"level,omitempty" yaml:"level,omitempty" toml:"level,omitempty"`    // "info"|"debug"|"warn"|"error"
	} `json:"logging,omitempty" yaml:"logging,omitempty" toml:"logging,omitempty"`

	Database struct {
		DSN string `json:"dsn,omitempty" yaml:"dsn,omitempty" toml:"dsn,omitempty"` // "./linty.db"
	} `json:"database,omitempty" yaml:"database,omitempty" toml:"database,omitempty"`

	Serve struct {
		Addr        string `json:"addr,omitempty" yaml:"addr,omitempty" toml:"addr,omitempty"`
		TokenBcrypt string `json:"token_bcrypt,omitempty" yaml:"token_bcrypt,omitempty" toml:"token_bcrypt,omitempty"`
	} `json:"serve,omitempty" yaml:"serve,omitempty" toml:"serve,omitempty"`
}

func DefaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Database.DSN = "./linty.db"
	c.Serve.Addr = "127.0.0.1:8713"
	return c
}

// ExampleConfig is what `linty init` writes: a single advisory rule flagging
// TODO markers.
func ExampleConfig() Config {
	c := DefaultConfig()
	c.Rules = []rules.Definition{{
		ID:       "no-todo",
		Message:  "Prefer filing an issue over committing a TODO.",
		Regex:    "TODO|todo",
		Severity: "warning",
	}}
	return c
}

// LoadConfig reads and decodes the config at path, or at DefaultPath when
// path is empty. The serialization format is chosen by file extension:
// .toml and .yaml/.yml decode as such, anything else as JSON. A missing or
// undecodable config is a fatal startup error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c := DefaultConfig()
	switch ext(path) {
	case ".toml":
		if err := toml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnv(&c)
	return c, nil
}

// WriteConfig encodes cfg to path in the format implied by its extension.
func WriteConfig(path string, cfg Config) error {
	var (
		b   []byte
		err error
	)
	switch ext(path) {
	case ".toml":
		var sb strings.Builder
		err = toml.NewEncoder(&sb).Encode(cfg)
		b = []byte(sb.String())
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		b, err = json.MarshalIndent(cfg, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

func applyEnv(c *Config) {
	if v := os.Getenv("LINTY_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("LINTY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LINTY_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
