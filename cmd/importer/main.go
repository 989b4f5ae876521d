package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dining-importer/internal/config"
	"dining-importer/internal/importer"
	"dining-importer/internal/model"
	"dining-importer/internal/repository"
	"dining-importer/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	inputPath := flag.String("input", "", "path to the dining export file (S3 key when S3 is enabled)")
	dryRun := flag.Bool("dry-run", false, "perform every step except the store write")
	verbose := flag.Bool("verbose", false, "console logging at debug level")
	flag.Parse()

	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *verbose {
		cfg.Logger.Level = "debug"
		cfg.Logger.Format = "console"
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Bool("dry_run", *dryRun).Msg("starting dining import")

	if *inputPath == "" {
		return fmt.Errorf("-input is required")
	}

	// Precondition checks run before any parsing: a missing export or
	// missing credentials must fail immediately, with no partial run.
	if !cfg.S3.Enabled {
		if _, err := os.Stat(*inputPath); err != nil {
			return fmt.Errorf("%w: %s", model.ErrInputNotFound, *inputPath)
		}
	}
	if err := cfg.RequireDatabase(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrMissingCredentials, err)
	}

	ctx := context.Background()

	var source importer.Source
	if cfg.S3.Enabled {
		source, err = importer.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			return fmt.Errorf("failed to initialise S3 source: %w", err)
		}
	} else {
		source = importer.NewFileSource(logger)
	}

	lines, err := source.Lines(ctx, *inputPath)
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	catalog := importer.NewImporter(logger).Parse(lines)
	if catalog.Len() == 0 {
		logger.Warn().Msg("no restaurants found in export")
	}

	var repo repository.RestaurantRepository
	if !*dryRun {
		pool, err := repository.NewPool(ctx, cfg.Database.URL, &repository.DBConfig{
			MaxOpenConns:    int32(cfg.Database.MaxConnections),
			MaxIdleConns:    int32(cfg.Database.MinConnections),
			ConnMaxLifetime: time.Duration(cfg.Database.MaxConnLifetime) * time.Second,
			ConnMaxIdleTime: 30 * time.Minute,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to initialise database: %w", err)
		}
		defer pool.Close()

		repo = repository.NewRestaurantRepository(pool, logger)
	}

	publisher := service.NewPublishService(repo, logger)
	report := publisher.Publish(ctx, catalog, service.PublishOptions{DryRun: *dryRun})

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d restaurants failed to publish", report.Failed, catalog.Len())
	}

	return nil
}
