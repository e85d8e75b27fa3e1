// Package registry fetches the agent registry and per-agent icons from the CDN.
package registry

import "encoding/json"

// Agent is one entry in the registry document.
type Agent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Repository string `json:"repository"`
}

// Registry is the shape of registry.json.
type Registry struct {
	Agents []Agent `json:"agents"`
}

// Parse decodes a registry.json body.
func Parse(data []byte) (Registry, error) {
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return Registry{}, err
	}
	return reg, nil
}

// DisplayName returns the agent's name, falling back to its id.
func (a Agent) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
