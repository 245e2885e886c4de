package source

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"tie/config"
	"tie/infras/otel"
	"tie/infras/s3"
	"tie/internal/domains/catalog/model"
	"tie/shared"
	"tie/shared/cache"
	"tie/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed catalog.json
var embeddedCatalog []byte

const cacheCatalogDocument = "catalog:document"

// Source supplies the catalog hierarchy once at start-up.
type Source interface {
	Load(ctx context.Context) (model.Hierarchy, error)
}

func Parse(data []byte) (model.Hierarchy, error) {
	var hierarchy model.Hierarchy

	if err := json.Unmarshal(data, &hierarchy); err != nil {
		return hierarchy, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if err := hierarchy.Validate(); err != nil {
		return hierarchy, fmt.Errorf("invalid catalog: %w", err)
	}

	return hierarchy, nil
}

type embeddedSource struct {
	data []byte
}

// NewStatic serves a catalog document held in memory. A nil document falls back to the bundled catalog.
func NewStatic(data []byte) Source {
	if data == nil {
		data = embeddedCatalog
	}

	return &embeddedSource{data: data}
}

func (e *embeddedSource) Load(_ context.Context) (model.Hierarchy, error) {
	return Parse(e.data)
}

// S3Source reads the catalog document from object storage, keeping a copy in redis between restarts.
type S3Source struct {
	s3     s3.S3
	cache  cache.RedisCache
	otel   otel.Otel
	bucket string
	key    string
	ttl    int
}

func NewS3(cfg *config.Config, s3Client s3.S3, redisCache cache.RedisCache, otel otel.Otel) *S3Source {
	return &S3Source{
		s3:     s3Client,
		cache:  redisCache,
		otel:   otel,
		bucket: cfg.Catalog.Bucket,
		key:    cfg.Catalog.Key,
		ttl:    cfg.Catalog.CacheTTL,
	}
}

func (s *S3Source) cacheKey() string {
	return shared.BuildCacheKey(cacheCatalogDocument, s.bucket, s.key)
}

func (s *S3Source) Load(ctx context.Context) (hierarchy model.Hierarchy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".catalog.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := s.cacheKey()

	if err = s.cache.Get(ctx, cacheKey, &hierarchy); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalog")

		return hierarchy, nil
	}

	data, err := s.s3.GetObject(ctx, s.bucket, s.key)
	if err != nil {
		log.Error().Err(err).Str("bucket", s.bucket).Str("key", s.key).Msg("failed to fetch catalog")

		return hierarchy, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	hierarchy, err = Parse(data)
	if err != nil {
		return hierarchy, err
	}

	if err := s.cache.Save(ctx, cacheKey, hierarchy, s.ttl); err != nil {
		log.Warn().Err(err).Msg("failed to cache catalog")
	}

	return hierarchy, nil
}

// Publish validates a catalog document and uploads it, dropping the cached copy.
func (s *S3Source) Publish(ctx context.Context, data []byte) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".catalog.Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = Parse(data); err != nil {
		return err
	}

	if err = s.s3.PutObject(ctx, s.bucket, s.key, model.ContentType, data); err != nil {
		return fmt.Errorf("failed to publish catalog: %w", err)
	}

	if err := s.cache.Delete(ctx, s.cacheKey()); err != nil {
		log.Warn().Err(err).Msg("failed to drop cached catalog")
	}

	return nil
}

// New picks the configured catalog source.
func New(cfg *config.Config, s3Client s3.S3, redisCache cache.RedisCache, otel otel.Otel) Source {
	if cfg.Catalog.Source == constant.CatalogSourceS3 {
		log.Info().Str("bucket", cfg.Catalog.Bucket).Str("key", cfg.Catalog.Key).Msg("Catalog loaded from object storage")

		return NewS3(cfg, s3Client, redisCache, otel)
	}

	return NewStatic(nil)
}
