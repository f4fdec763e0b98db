package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rwblickhan/linty/internal/lint"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfigFile(t, "cfg.json", `{
  "rules": [
    {"id": "no-todo", "message": "m", "regex": "TODO", "severity": "warning", "includes": ["*.md"]}
  ]
}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(cfg.Rules))
	}
	r := cfg.Rules[0]
	if r.ID != "no-todo" || r.Severity != lint.SeverityWarning || len(r.Includes) != 1 {
		t.Fatalf("unexpected rule: %+v", r)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfigFile(t, "cfg.toml", `
[[rules]]
id = "no-todo"
message = "m"
regex = "TODO"
severity = "error"
excludes = ["vendor/**"]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].Severity != lint.SeverityError {
		t.Fatalf("unexpected config: %+v", cfg.Rules)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfigFile(t, "cfg.yaml", `
rules:
  - id: no-todo
    message: m
    regex: TODO
    severity: warning
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].ID != "no-todo" {
		t.Fatalf("unexpected config: %+v", cfg.Rules)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadConfig_Unparsable(t *testing.T) {
	path := writeConfigFile(t, "cfg.json", "{not json")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparsable config")
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{"cfg.json", "cfg.toml", "cfg.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteConfig(path, ExampleConfig()); err != nil {
				t.Fatalf("WriteConfig: %v", err)
			}
			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if len(cfg.Rules) != 1 || cfg.Rules[0].ID != "no-todo" {
				t.Fatalf("round trip lost rules: %+v", cfg.Rules)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Database.DSN == "" || c.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}
