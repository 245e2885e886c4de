package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"tie/internal/domains/catalog/model"
	"tie/internal/domains/catalog/source"

	"github.com/rs/zerolog/log"
)

const loadTimeout = 30 * time.Second

// Catalog answers membership queries over the property -> room type -> room number hierarchy.
type Catalog interface {
	Properties() []string
	RoomTypesOf(propertyName string) ([]string, error)
	RoomNumbersOf(propertyName, roomType string) ([]string, error)
	IsValidTriple(triple model.Triple) bool
	Check(triple model.Triple) error
	EffectiveRoomTypes(propertyName, stored string) []string
	EffectiveRoomNumbers(propertyName, roomType, stored string) []string
}

type serviceImpl struct {
	properties []string
	roomTypes  map[string][]string
	rooms      map[string]map[string][]string
}

// New loads the hierarchy once. Later catalog changes need a restart.
func New(src source.Source) (Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	hierarchy, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	svc := FromHierarchy(hierarchy)

	log.Info().Int("properties", len(hierarchy.Properties)).Msg("Catalog loaded")

	return svc, nil
}

func FromHierarchy(hierarchy model.Hierarchy) Catalog {
	svc := &serviceImpl{
		properties: make([]string, 0, len(hierarchy.Properties)),
		roomTypes:  make(map[string][]string, len(hierarchy.Properties)),
		rooms:      make(map[string]map[string][]string, len(hierarchy.Properties)),
	}

	for _, property := range hierarchy.Properties {
		svc.properties = append(svc.properties, property.Name)
		svc.rooms[property.Name] = make(map[string][]string, len(property.RoomTypes))
		svc.roomTypes[property.Name] = make([]string, 0, len(property.RoomTypes))

		for _, roomType := range property.RoomTypes {
			svc.roomTypes[property.Name] = append(svc.roomTypes[property.Name], roomType.Name)
			svc.rooms[property.Name][roomType.Name] = slices.Clone(roomType.Rooms)
		}
	}

	return svc
}

func (s *serviceImpl) Properties() []string {
	return slices.Clone(s.properties)
}

func (s *serviceImpl) RoomTypesOf(propertyName string) ([]string, error) {
	roomTypes, ok := s.roomTypes[propertyName]
	if !ok {
		return nil, &model.UnknownPropertyError{PropertyName: propertyName}
	}

	return slices.Clone(roomTypes), nil
}

func (s *serviceImpl) RoomNumbersOf(propertyName, roomType string) ([]string, error) {
	rooms, ok := s.rooms[propertyName][roomType]
	if !ok {
		return nil, &model.UnknownRoomTypeError{PropertyName: propertyName, RoomType: roomType}
	}

	return slices.Clone(rooms), nil
}

func (s *serviceImpl) IsValidTriple(triple model.Triple) bool {
	return s.Check(triple) == nil
}

// Check explains why a triple does not resolve, or returns nil.
func (s *serviceImpl) Check(triple model.Triple) error {
	if _, ok := s.roomTypes[triple.PropertyName]; !ok {
		return &model.CatalogError{
			Triple: triple,
			Reason: fmt.Sprintf("property %q is not in the catalog", triple.PropertyName),
		}
	}

	rooms, ok := s.rooms[triple.PropertyName][triple.RoomType]
	if !ok {
		return &model.CatalogError{
			Triple: triple,
			Reason: fmt.Sprintf("room type %q is not offered at %q", triple.RoomType, triple.PropertyName),
		}
	}

	if !slices.Contains(rooms, triple.RoomNo) {
		return &model.CatalogError{
			Triple: triple,
			Reason: fmt.Sprintf("room %q is not listed under %q at %q", triple.RoomNo, triple.RoomType, triple.PropertyName),
		}
	}

	return nil
}

// EffectiveRoomTypes returns the catalog options plus a stored value the catalog no longer lists.
func (s *serviceImpl) EffectiveRoomTypes(propertyName, stored string) []string {
	return withStored(s.roomTypes[propertyName], stored)
}

func (s *serviceImpl) EffectiveRoomNumbers(propertyName, roomType, stored string) []string {
	return withStored(s.rooms[propertyName][roomType], stored)
}

func withStored(options []string, stored string) []string {
	effective := slices.Clone(options)
	if stored != "" && !slices.Contains(effective, stored) {
		effective = append(effective, stored)
	}

	if effective == nil {
		return []string{}
	}

	return effective
}
