package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/careerfit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration file",
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Create directories
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config file already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use 'careerfit config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Created config file at %s\n", configPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Export the fitted vectorizer and KMeans model as JSON")
	fmt.Fprintln(out, "  2. Copy them and industry_data.csv to ~/.local/share/careerfit/models/")
	fmt.Fprintln(out, "  3. Run 'careerfit analyze \"python, sql, excel\"'")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(out, "No config file found. Run 'careerfit config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintf(out, "# Config file: %s\n\n", configPath)
	fmt.Fprintln(out, string(data))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := config.Load(configPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config file %s is valid\n", configPath)
	return nil
}

const defaultConfig = `# careerfit configuration

[artifacts]
# Local directory or s3://bucket/prefix
location = "~/.local/share/careerfit/models"
vectorizer = "vectorizer.json"
model = "kmeans_model.json"
industry = "industry_data.csv"
industry_source = "file"  # file or database

[s3]
region = "us-east-1"
# endpoint = "http://localhost:9000"  # MinIO or other S3-compatible storage
# access_key_file = "~/.config/careerfit/s3_access_key"
# secret_key_file = "~/.config/careerfit/s3_secret_key"
# Keys may also come from AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY
use_path_style = false

[database]
path = "~/.local/share/careerfit/careerfit.db"

[analysis]
top_n = 5    # top matches per analysis
workers = 4  # concurrent analyses in batch runs

[logging]
level = "info"  # debug, info, warn, error
json = false

[mcp]
enabled = true
transport = "stdio"
`
