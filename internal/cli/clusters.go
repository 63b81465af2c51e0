package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
	"github.com/vijay-prabhu/careerfit/internal/config"
	"github.com/vijay-prabhu/careerfit/internal/output"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "List career clusters",
	Long: `List the career clusters of the configured model.

When the model cannot be loaded the built-in cluster names are shown.`,
	RunE: runClusters,
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}

func runClusters(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	entries := cluster.Names()
	if model, err := loadModel(cmd.Context(), cfg); err != nil {
		log.Warn("showing built-in cluster names", zap.Error(err))
	} else {
		entries = model.Entries()
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, entries)
}

// loadModel reads only the cluster model from the configured source
func loadModel(ctx context.Context, cfg *config.Config) (*cluster.Model, error) {
	src, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	location := src.Location(cfg.Artifacts.Model)
	rc, err := src.Open(ctx, cfg.Artifacts.Model)
	if err != nil {
		return nil, &artifact.LoadError{Artifact: artifact.NameModel, Location: location, Err: err}
	}
	defer rc.Close()

	model, err := cluster.Load(rc)
	if err != nil {
		return nil, &artifact.LoadError{Artifact: artifact.NameModel, Location: location, Err: err}
	}
	return model, nil
}
