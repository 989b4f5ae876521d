package importer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Source implements Source for exports published to an S3 bucket.
type s3Source struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Source creates an S3-based export source.
func NewS3Source(ctx context.Context, bucket, region string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "s3-source").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 source initialised")

	return &s3Source{
		client: client,
		bucket: bucket,
		logger: logger,
	}, nil
}

// Lines reads an export object from S3. The key parameter should be the
// full S3 key (including any prefix). Objects with a .gz extension are
// decompressed transparently.
func (s *s3Source) Lines(ctx context.Context, key string) ([]string, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Msg("reading export from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get export from S3 (bucket=%s, key=%s): %w", s.bucket, key, err)
	}
	defer result.Body.Close()

	lines, err := readLines(ctx, result.Body, key)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", key).
		Int("lines_read", len(lines)).
		Msg("export object read successfully")

	return lines, nil
}
