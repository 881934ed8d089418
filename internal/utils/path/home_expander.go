// Package path provides helpers for resolving user-supplied filesystem paths.
package path

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	homePrefixConstant      = "~"
	homeSlashPrefixConstant = "~/"
)

// HomeExpander expands a leading tilde in filesystem paths to the user's home directory.
type HomeExpander struct{}

// NewHomeExpander constructs a HomeExpander instance.
func NewHomeExpander() *HomeExpander {
	return &HomeExpander{}
}

// Expand replaces a leading "~" or "~/" with the current user's home directory.
// Paths without a tilde prefix are returned unchanged, as are paths when the
// home directory cannot be resolved.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if candidatePath != homePrefixConstant && !strings.HasPrefix(candidatePath, homeSlashPrefixConstant) {
		return candidatePath
	}

	homeDirectory, homeError := os.UserHomeDir()
	if homeError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == homePrefixConstant {
		return homeDirectory
	}

	return filepath.Join(homeDirectory, candidatePath[len(homeSlashPrefixConstant):])
}
