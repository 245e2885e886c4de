package source_test

import (
	"context"
	"errors"
	"testing"

	"tie/config"
	otelMocks "tie/infras/otel/mocks"
	s3Mocks "tie/infras/s3/mocks"
	"tie/internal/domains/catalog/model"
	"tie/internal/domains/catalog/source"
	cacheMocks "tie/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const document = `{"properties":[{"name":"Le Park Resort","room_types":[{"name":"Family Room","rooms":["201","201&202"]}]}]}`

func newS3Source(t *testing.T) (*source.S3Source, *s3Mocks.MockS3, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s3Client := s3Mocks.NewMockS3(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Catalog.Bucket = "tie-config"
	cfg.Catalog.Key = "catalog/catalog.json"
	cfg.Catalog.CacheTTL = 300

	return source.NewS3(cfg, s3Client, redisCache, otelMocks.NewOtel()), s3Client, redisCache
}

func TestParse(t *testing.T) {
	hierarchy, err := source.Parse([]byte(document))
	require.NoError(t, err)

	require.Len(t, hierarchy.Properties, 1)
	assert.Equal(t, []string{"201", "201&202"}, hierarchy.Properties[0].RoomTypes[0].Rooms)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"malformed":          `{"properties":`,
		"empty":              `{"properties":[]}`,
		"duplicate property": `{"properties":[{"name":"A"},{"name":"A"}]}`,
		"unnamed room type":  `{"properties":[{"name":"A","room_types":[{"name":" "}]}]}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := source.Parse([]byte(doc))

			assert.Error(t, err)
		})
	}
}

func TestStatic_BundledCatalog(t *testing.T) {
	hierarchy, err := source.NewStatic(nil).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, hierarchy.Properties, 14)
}

func TestS3Source_CacheMiss(t *testing.T) {
	src, s3Client, redisCache := newS3Source(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:document:tie-config:catalog/catalog.json", gomock.Any()).Return(errors.New("redis: nil"))
	s3Client.EXPECT().GetObject(gomock.Any(), "tie-config", "catalog/catalog.json").Return([]byte(document), nil)
	redisCache.EXPECT().Save(gomock.Any(), "catalog:document:tie-config:catalog/catalog.json", gomock.Any(), 300).Return(nil)

	hierarchy, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Le Park Resort", hierarchy.Properties[0].Name)
}

func TestS3Source_CacheHit(t *testing.T) {
	src, _, redisCache := newS3Source(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
		*value.(*model.Hierarchy) = model.Hierarchy{Properties: []model.Property{{Name: "La Antilia"}}}

		return nil
	})

	hierarchy, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "La Antilia", hierarchy.Properties[0].Name)
}

func TestS3Source_FetchFailure(t *testing.T) {
	src, s3Client, redisCache := newS3Source(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
	s3Client.EXPECT().GetObject(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	_, err := src.Load(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestS3Source_Publish(t *testing.T) {
	src, s3Client, redisCache := newS3Source(t)

	s3Client.EXPECT().PutObject(gomock.Any(), "tie-config", "catalog/catalog.json", model.ContentType, []byte(document)).Return(nil)
	redisCache.EXPECT().Delete(gomock.Any(), "catalog:document:tie-config:catalog/catalog.json").Return(nil)

	require.NoError(t, src.Publish(context.Background(), []byte(document)))
}

func TestS3Source_PublishRejectsInvalid(t *testing.T) {
	src, _, _ := newS3Source(t)

	assert.Error(t, src.Publish(context.Background(), []byte(`{"properties":[]}`)))
}
