package catalog

import (
	"context"
	"fmt"

	"freshvegies/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used by S3Source.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source loads the catalogue from a YAML object in S3.
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates an S3-backed catalogue source using the default AWS
// credential chain.
func NewS3Source(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (*S3Source, error) {
	logger = logger.With().Str("component", "catalog-s3-source").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("key", key).
		Msg("S3 catalogue source initialised")

	return NewS3SourceWithClient(s3.NewFromConfig(cfg), bucket, key, logger), nil
}

// NewS3SourceWithClient creates an S3 source around an existing client.
func NewS3SourceWithClient(client ObjectGetter, bucket, key string, logger zerolog.Logger) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load fetches and decodes the catalogue object.
func (s *S3Source) Load(ctx context.Context) ([]model.Shop, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Msg("loading catalogue from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	shops, err := decodeMaybeGzip(result.Body, s.key)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to read catalogue from S3")
		return nil, err
	}

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Int("shops_loaded", len(shops)).
		Msg("catalogue loaded successfully from S3")

	return shops, nil
}

// FallbackSource tries a primary source and falls back to a secondary one.
type FallbackSource struct {
	primary   Source
	secondary Source
	logger    zerolog.Logger
}

// NewFallbackSource creates a source that uses secondary whenever primary fails.
// A nil primary always uses secondary.
func NewFallbackSource(primary, secondary Source, logger zerolog.Logger) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    logger.With().Str("component", "catalog-fallback-source").Logger(),
	}
}

// Load attempts the primary source first.
func (s *FallbackSource) Load(ctx context.Context) ([]model.Shop, error) {
	if s.primary != nil {
		shops, err := s.primary.Load(ctx)
		if err == nil {
			return shops, nil
		}

		s.logger.Warn().
			Err(err).
			Msg("failed to load catalogue from primary source, falling back")
	} else {
		s.logger.Debug().Msg("no primary catalogue source configured")
	}

	return s.secondary.Load(ctx)
}
