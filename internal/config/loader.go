package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Expand path
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	// Read file
	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'careerfit config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Expand paths in config
	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to defaults otherwise
func LoadOrDefault(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.expandPaths(); err != nil {
			return nil, fmt.Errorf("failed to expand paths: %w", err)
		}
		return cfg, nil
	}

	return Load(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	if !c.Artifacts.IsRemote() {
		c.Artifacts.Location, err = expandPath(c.Artifacts.Location)
		if err != nil {
			return err
		}
	}

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	c.S3.AccessKeyFile, err = expandPath(c.S3.AccessKeyFile)
	if err != nil {
		return err
	}

	c.S3.SecretKeyFile, err = expandPath(c.S3.SecretKeyFile)
	if err != nil {
		return err
	}

	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// Report fields by their TOML key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if err := newValidator().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		for _, ve := range validationErrors {
			field := strings.TrimPrefix(ve.Namespace(), "Config.")
			if ve.Param() != "" {
				errs = append(errs, fmt.Errorf("%s failed '%s=%s' (got '%v')", field, ve.Tag(), ve.Param(), ve.Value()))
			} else {
				errs = append(errs, fmt.Errorf("%s failed '%s'", field, ve.Tag()))
			}
		}
	}

	// Artifact validation
	if c.Artifacts.IndustrySource == "file" && c.Artifacts.Industry == "" {
		errs = append(errs, errors.New("artifacts.industry is required when industry_source is 'file'"))
	}
	if c.Artifacts.IsRemote() {
		if bucket, _ := SplitS3Location(c.Artifacts.Location); bucket == "" {
			errs = append(errs, fmt.Errorf("artifacts.location has no bucket: '%s'", c.Artifacts.Location))
		}
	}

	// MCP validation
	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// SplitS3Location splits s3://bucket/prefix into bucket and prefix
func SplitS3Location(location string) (bucket, prefix string) {
	rest := strings.TrimPrefix(location, "s3://")
	bucket, prefix, _ = strings.Cut(rest, "/")
	return bucket, strings.Trim(prefix, "/")
}

// EnsureDirectories creates necessary directories for the database and local artifacts
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Database.Path),
	}
	if !c.Artifacts.IsRemote() {
		dirs = append(dirs, c.Artifacts.Location)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
