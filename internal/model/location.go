package model

import (
	"fmt"
	"strings"
)

// Location says which root an artifact was discovered under.
type Location string

const (
	// LocationWorkspace marks artifacts found under the project root.
	LocationWorkspace Location = "workspace"

	// LocationGlobal marks artifacts found under the user's home root.
	LocationGlobal Location = "global"
)

// IsValid returns true if the location is recognized.
func (l Location) IsValid() bool {
	return l == LocationWorkspace || l == LocationGlobal
}

// String returns the string representation of the location.
func (l Location) String() string {
	return string(l)
}

// ParseLocation converts a string to a Location.
// Returns an error if the location is not recognized.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "workspace", "project", "local":
		return LocationWorkspace, nil
	case "global", "user", "home":
		return LocationGlobal, nil
	default:
		return "", fmt.Errorf("unknown location %q (valid: workspace, global)", s)
	}
}
