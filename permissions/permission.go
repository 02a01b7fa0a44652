package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"farhatna/internal/domains/user/model"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Endpoint struct {
	Roles  []model.Role `json:"roles"`
	Path   string       `json:"path"`
	Method string       `json:"method"`
	Skip   bool         `json:"skip"`
}

// Allows reports whether the role may call this endpoint. An endpoint with no
// roles listed is closed, not open.
func (e Endpoint) Allows(role model.Role) bool {
	return slices.Contains(e.Roles, role)
}

type PermissionData struct {
	Endpoints []Endpoint `json:"endpoints"`
	Skip      bool       `json:"skip"`
}

// Find returns the endpoint entry matching the chi route pattern and method,
// or a zero Endpoint when the route is unknown.
func (r *PermissionData) Find(path, method string) Endpoint {
	idx := slices.IndexFunc(r.Endpoints, func(e Endpoint) bool {
		return e.Path == path && e.Method == method
	})

	if idx == -1 {
		return Endpoint{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
