package config

import "strings"

// Config represents the application configuration
type Config struct {
	Artifacts ArtifactsConfig `toml:"artifacts"`
	S3        S3Config        `toml:"s3"`
	Database  DatabaseConfig  `toml:"database"`
	Analysis  AnalysisConfig  `toml:"analysis"`
	Logging   LoggingConfig   `toml:"logging"`
	MCP       MCPConfig       `toml:"mcp"`
}

// ArtifactsConfig locates the fitted vectorizer, model and industry table
type ArtifactsConfig struct {
	// Location is a local directory or an s3://bucket/prefix URL
	Location       string `toml:"location" validate:"required"`
	Vectorizer     string `toml:"vectorizer" validate:"required"`
	Model          string `toml:"model" validate:"required"`
	Industry       string `toml:"industry"`
	IndustrySource string `toml:"industry_source" validate:"oneof=file database"`
}

// IsRemote reports whether artifacts are read from object storage
func (a ArtifactsConfig) IsRemote() bool {
	return strings.HasPrefix(a.Location, "s3://")
}

// S3Config contains object storage settings used when artifacts are remote
type S3Config struct {
	Region        string `toml:"region"`
	Endpoint      string `toml:"endpoint" validate:"omitempty,url"`
	AccessKeyFile string `toml:"access_key_file"`
	SecretKeyFile string `toml:"secret_key_file"`
	UsePathStyle  bool   `toml:"use_path_style"`
	// Keys may also come from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path" validate:"required"`
}

// AnalysisConfig tunes ranking and batch runs
type AnalysisConfig struct {
	TopN    int `toml:"top_n" validate:"min=1,max=50"`
	Workers int `toml:"workers" validate:"min=1,max=64"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `toml:"json"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Artifacts: ArtifactsConfig{
			Location:       "~/.local/share/careerfit/models",
			Vectorizer:     "vectorizer.json",
			Model:          "kmeans_model.json",
			Industry:       "industry_data.csv",
			IndustrySource: "file",
		},
		S3: S3Config{
			Region: "us-east-1",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/careerfit/careerfit.db",
		},
		Analysis: AnalysisConfig{
			TopN:    5,
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
