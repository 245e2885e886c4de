package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EntityName = "catalog"

	ContentType = "application/json"
)

type RoomType struct {
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

type Property struct {
	Name      string     `json:"name"`
	RoomTypes []RoomType `json:"room_types"`
}

// Hierarchy is the ordered property -> room type -> room number tree.
// Room numbers are opaque tokens; "101&102" is a single combined unit.
type Hierarchy struct {
	Properties []Property `json:"properties"`
}

// Triple is the (property, room type, room number) selection validated against a Hierarchy.
type Triple struct {
	PropertyName string
	RoomType     string
	RoomNo       string
}

func (h Hierarchy) Validate() error {
	if len(h.Properties) == 0 {
		return errors.New("catalog has no properties")
	}

	seen := map[string]bool{}

	for _, property := range h.Properties {
		name := strings.TrimSpace(property.Name)
		if name == "" {
			return errors.New("catalog property without a name")
		}

		if seen[name] {
			return fmt.Errorf("catalog property %q listed twice", name)
		}

		seen[name] = true

		types := map[string]bool{}

		for _, roomType := range property.RoomTypes {
			if strings.TrimSpace(roomType.Name) == "" {
				return fmt.Errorf("catalog property %q has a room type without a name", name)
			}

			if types[roomType.Name] {
				return fmt.Errorf("catalog property %q lists room type %q twice", name, roomType.Name)
			}

			types[roomType.Name] = true
		}
	}

	return nil
}
