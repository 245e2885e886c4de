package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tie/internal/domains/catalog/model"
	"tie/internal/domains/catalog/service"
	"tie/internal/domains/catalog/source"
	"tie/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) service.Catalog {
	t.Helper()

	catalog, err := service.New(source.NewStatic(nil))
	require.NoError(t, err)

	return catalog
}

func TestProperties_Ordered(t *testing.T) {
	properties := newCatalog(t).Properties()

	require.Len(t, properties, 14)
	assert.Equal(t, "Eden Beach Resort", properties[0])
	assert.Equal(t, "Le Park Resort", properties[13])
}

func TestRoomTypesOf(t *testing.T) {
	catalog := newCatalog(t)

	roomTypes, err := catalog.RoomTypesOf("Le Park Resort")
	require.NoError(t, err)
	assert.NotContains(t, roomTypes, "Double Room")

	_, err = catalog.RoomTypesOf("Villa Shakti")

	var unknown *model.UnknownPropertyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Villa Shakti", unknown.PropertyName)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomNumbersOf(t *testing.T) {
	catalog := newCatalog(t)

	rooms, err := catalog.RoomNumbersOf("Eden Beach Resort", "Double Room")
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102", "103", "104"}, rooms)

	_, err = catalog.RoomNumbersOf("Le Park Resort", "Double Room")

	var unknown *model.UnknownRoomTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomNumbersOf_ReturnsCopy(t *testing.T) {
	catalog := newCatalog(t)

	rooms, err := catalog.RoomNumbersOf("Eden Beach Resort", "Double Room")
	require.NoError(t, err)

	rooms[0] = "999"

	again, err := catalog.RoomNumbersOf("Eden Beach Resort", "Double Room")
	require.NoError(t, err)
	assert.Equal(t, "101", again[0])
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		triple model.Triple
		valid  bool
	}{
		{
			name:   "listed room",
			triple: model.Triple{PropertyName: "Eden Beach Resort", RoomType: "Double Room", RoomNo: "101"},
			valid:  true,
		},
		{
			name:   "combined unit is an opaque token",
			triple: model.Triple{PropertyName: "Le Park Resort", RoomType: "Family Room", RoomNo: "201&202"},
			valid:  true,
		},
		{
			name:   "room type not offered at property",
			triple: model.Triple{PropertyName: "Le Park Resort", RoomType: "Double Room", RoomNo: "101"},
		},
		{
			name:   "unknown property",
			triple: model.Triple{PropertyName: "Villa Shakti", RoomType: "Double Room", RoomNo: "101"},
		},
		{
			name:   "room not under room type",
			triple: model.Triple{PropertyName: "Eden Beach Resort", RoomType: "Double Room", RoomNo: "201"},
		},
		{
			name:   "combined unit is not decomposed",
			triple: model.Triple{PropertyName: "Eden Beach Resort", RoomType: "Double Room", RoomNo: "101&102"},
		},
	}

	catalog := newCatalog(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.Check(tt.triple)

			assert.Equal(t, tt.valid, catalog.IsValidTriple(tt.triple))

			if tt.valid {
				assert.NoError(t, err)

				return
			}

			var catalogErr *model.CatalogError
			require.True(t, errors.As(err, &catalogErr))
			assert.Equal(t, tt.triple, catalogErr.Triple)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestEffectiveOptions(t *testing.T) {
	catalog := newCatalog(t)

	roomTypes := catalog.EffectiveRoomTypes("Le Park Resort", "Double Room")
	assert.Equal(t, []string{"Triple Room", "Family Room", "3BHK", "Double Room"}, roomTypes)

	roomTypes = catalog.EffectiveRoomTypes("Le Park Resort", "Family Room")
	assert.Equal(t, []string{"Triple Room", "Family Room", "3BHK"}, roomTypes)

	rooms := catalog.EffectiveRoomNumbers("Le Park Resort", "Double Room", "105")
	assert.Equal(t, []string{"105"}, rooms)

	assert.Empty(t, catalog.EffectiveRoomNumbers("Villa Shakti", "Villa", ""))
}

type failingSource struct{}

func (failingSource) Load(context.Context) (model.Hierarchy, error) {
	return model.Hierarchy{}, errors.New("bucket unreachable")
}

func TestNew_SourceFailure(t *testing.T) {
	_, err := service.New(failingSource{})

	assert.ErrorContains(t, err, "bucket unreachable")
}
