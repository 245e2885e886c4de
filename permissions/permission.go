package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed to call one route pattern.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints    []Permission        `json:"endpoints"`
	Capabilities map[string][]string `json:"capabilities"`
	Skip         bool                `json:"skip"`
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

// HasCapability reports whether role is granted capability. Unknown roles have none.
func (r *PermissionData) HasCapability(role, capability string) bool {
	if r == nil {
		return false
	}

	return slices.Contains(r.Capabilities[role], capability)
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().
		Int("endpoints", len(permissions.Endpoints)).
		Int("roles", len(permissions.Capabilities)).
		Msg("Successfully loaded embedded permissions")

	return permissions
}
