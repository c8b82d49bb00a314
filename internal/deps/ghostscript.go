package deps

import (
	"pdfsqueeze/internal/services/ghostscript"
)

// ResolveGhostscriptCommand reports the command the status output should
// probe for the engine. A configured binary wins; otherwise the first
// discoverable candidate name is used, falling back to the generic name so
// the failure detail names something recognizable.
func ResolveGhostscriptCommand(configured string) string {
	if configured != "" {
		return configured
	}
	if path, err := ghostscript.Locate(""); err == nil {
		return path
	}
	return ghostscript.CandidateNames[len(ghostscript.CandidateNames)-1]
}
