package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Analysis.TopN != 5 {
		t.Errorf("expected TopN=5, got %d", cfg.Analysis.TopN)
	}

	if cfg.Analysis.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", cfg.Analysis.Workers)
	}

	if cfg.Artifacts.IndustrySource != "file" {
		t.Errorf("expected IndustrySource=file, got %s", cfg.Artifacts.IndustrySource)
	}

	if cfg.Artifacts.IsRemote() {
		t.Error("expected default artifacts to be local")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name: "valid s3 location",
			modify: func(c *Config) {
				c.Artifacts.Location = "s3://models/careerfit/v1"
				c.S3.Endpoint = "http://localhost:9000"
			},
		},
		{
			name: "database source without industry file",
			modify: func(c *Config) {
				c.Artifacts.IndustrySource = "database"
				c.Artifacts.Industry = ""
			},
		},
		{
			name: "missing vectorizer",
			modify: func(c *Config) {
				c.Artifacts.Vectorizer = ""
			},
			wantErr: "artifacts.vectorizer",
		},
		{
			name: "unknown industry source",
			modify: func(c *Config) {
				c.Artifacts.IndustrySource = "api"
			},
			wantErr: "artifacts.industry_source",
		},
		{
			name: "file source without industry file",
			modify: func(c *Config) {
				c.Artifacts.Industry = ""
			},
			wantErr: "artifacts.industry is required",
		},
		{
			name: "s3 location without bucket",
			modify: func(c *Config) {
				c.Artifacts.Location = "s3://"
			},
			wantErr: "has no bucket",
		},
		{
			name: "invalid s3 endpoint",
			modify: func(c *Config) {
				c.S3.Endpoint = "not a url"
			},
			wantErr: "s3.endpoint",
		},
		{
			name: "top_n too large",
			modify: func(c *Config) {
				c.Analysis.TopN = 51
			},
			wantErr: "analysis.top_n",
		},
		{
			name: "zero workers",
			modify: func(c *Config) {
				c.Analysis.Workers = 0
			},
			wantErr: "analysis.workers",
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Logging.Level = "trace"
			},
			wantErr: "logging.level",
		},
		{
			name: "invalid mcp transport",
			modify: func(c *Config) {
				c.MCP.Transport = "http"
			},
			wantErr: "mcp.transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[artifacts]
location = "/srv/careerfit"
industry_source = "database"

[analysis]
top_n = 3

[logging]
level = "debug"
json = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Artifacts.Location != "/srv/careerfit" {
		t.Errorf("Location = %q, want /srv/careerfit", cfg.Artifacts.Location)
	}
	if cfg.Artifacts.Vectorizer != "vectorizer.json" {
		t.Errorf("Vectorizer = %q, want default vectorizer.json", cfg.Artifacts.Vectorizer)
	}
	if cfg.Analysis.TopN != 3 {
		t.Errorf("TopN = %d, want 3", cfg.Analysis.TopN)
	}
	if cfg.Analysis.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Analysis.Workers)
	}
	if !cfg.Logging.JSON || cfg.Logging.Level != "debug" {
		t.Errorf("Logging = %+v, want debug json", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil || !strings.Contains(err.Error(), "config init") {
		t.Errorf("Load(missing) error = %v, want hint to run config init", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[analysis\ntop_n = "), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(bad) expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.toml")
	if err := os.WriteFile(invalid, []byte("[analysis]\ntop_n = 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Load(invalid) error = %v, want validation error", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if strings.HasPrefix(cfg.Database.Path, "~") {
		t.Errorf("Database.Path = %q, want ~ expanded", cfg.Database.Path)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestSplitS3Location(t *testing.T) {
	tests := []struct {
		location   string
		wantBucket string
		wantPrefix string
	}{
		{"s3://models", "models", ""},
		{"s3://models/", "models", ""},
		{"s3://models/careerfit/v1/", "models", "careerfit/v1"},
		{"s3://", "", ""},
	}

	for _, tt := range tests {
		bucket, prefix := SplitS3Location(tt.location)
		if bucket != tt.wantBucket || prefix != tt.wantPrefix {
			t.Errorf("SplitS3Location(%q) = (%q, %q), want (%q, %q)", tt.location, bucket, prefix, tt.wantBucket, tt.wantPrefix)
		}
	}
}

func TestRemoteLocationNotExpanded(t *testing.T) {
	cfg := Default()
	cfg.Artifacts.Location = "s3://bucket/prefix"
	if err := cfg.expandPaths(); err != nil {
		t.Fatalf("expandPaths() error = %v", err)
	}
	if cfg.Artifacts.Location != "s3://bucket/prefix" {
		t.Errorf("Location = %q, want unchanged", cfg.Artifacts.Location)
	}
}
