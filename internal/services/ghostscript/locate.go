package ghostscript

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pdfsqueeze/internal/services"
)

// CandidateNames lists the Ghostscript binary names probed on PATH, in
// priority order. The Windows CLI executables come first so a Unix-style "gs"
// shim never shadows them.
var CandidateNames = []string{"gswin64c", "gswin32c", "gs"}

// Locate resolves the Ghostscript executable. When explicit is non-empty it
// must point at an existing file; auto-discovery is not attempted as a
// fallback. Otherwise the candidate names are resolved against PATH in order
// and the first hit wins.
func Locate(explicit string) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", services.Wrap(
				services.ErrConfiguration,
				"ghostscript",
				"locate",
				fmt.Sprintf("ghostscript not found at %s", explicit),
				nil,
			)
		}
		return explicit, nil
	}

	for _, name := range CandidateNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", services.Wrap(
		services.ErrConfiguration,
		"ghostscript",
		"locate",
		"ghostscript not found; install it and ensure its bin directory is on PATH",
		nil,
	)
}
