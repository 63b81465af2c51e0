package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/config"
	"github.com/vijay-prabhu/careerfit/internal/database"
	"github.com/vijay-prabhu/careerfit/internal/logger"
)

// setup loads configuration, applies flag and environment overrides and
// builds the logger
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if viper.GetBool("debug") {
		cfg.Logging.Level = "debug"
	}
	if viper.GetBool("log-json") {
		cfg.Logging.JSON = true
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	log.Debug("configuration loaded", zap.String("path", configPath))
	return cfg, log, nil
}

// openSource returns the artifact source for the configured location
func openSource(ctx context.Context, cfg *config.Config) (artifact.Source, error) {
	if cfg.Artifacts.IsRemote() {
		src, err := artifact.NewS3Source(ctx, cfg.Artifacts.Location, cfg.S3)
		if err != nil {
			return nil, &artifact.LoadError{Artifact: "artifacts", Location: cfg.Artifacts.Location, Err: err}
		}
		return src, nil
	}
	return artifact.DirSource{Dir: cfg.Artifacts.Location}, nil
}

// loadStore loads every artifact. The industry table comes from the
// database when industry_source is "database".
func loadStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*artifact.Store, error) {
	start := time.Now()

	src, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := artifact.Options{
		Vectorizer: cfg.Artifacts.Vectorizer,
		Model:      cfg.Artifacts.Model,
		Industry:   cfg.Artifacts.Industry,
	}
	if cfg.Artifacts.IndustrySource == "database" {
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, &artifact.LoadError{Artifact: artifact.NameIndustry, Location: cfg.Database.Path, Err: err}
		}
		defer db.Close()
		opts.Lister = db
	}

	store, err := artifact.Load(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	log.Info("artifacts loaded",
		zap.String("location", cfg.Artifacts.Location),
		zap.String("industry_source", cfg.Artifacts.IndustrySource),
		zap.Int("industry_jobs", store.Len()),
		zap.Int("clusters", store.Model().K()),
		zap.Int("vocabulary", store.Vectorizer().Dim()),
		zap.Duration("duration", time.Since(start)),
	)
	return store, nil
}

// loadIndustry reads only the industry table from the configured source
func loadIndustry(ctx context.Context, cfg *config.Config) ([]artifact.IndustryRecord, error) {
	if cfg.Artifacts.IndustrySource == "database" {
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		return db.IndustryRecords(ctx)
	}

	src, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rc, err := src.Open(ctx, cfg.Artifacts.Industry)
	if err != nil {
		return nil, &artifact.LoadError{Artifact: artifact.NameIndustry, Location: src.Location(cfg.Artifacts.Industry), Err: err}
	}
	defer rc.Close()

	return artifact.ReadIndustryCSV(rc)
}

// newAnalyzer loads artifacts and builds an analyzer configured from cfg
func newAnalyzer(ctx context.Context, cfg *config.Config, log *zap.Logger, topN int) (*analysis.Analyzer, error) {
	store, err := loadStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = cfg.Analysis.TopN
	}
	return analysis.New(store, analysis.WithTopN(topN), analysis.WithLogger(log)), nil
}
