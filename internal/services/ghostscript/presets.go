package ghostscript

import (
	"fmt"
	"sort"
	"strings"

	"pdfsqueeze/internal/services"
)

// Preset describes one of the fixed Ghostscript quality levels.
type Preset struct {
	Name        string
	Token       string
	Description string
}

// presets is the closed set of quality levels pdfsqueeze exposes. Each name
// maps to exactly one -dPDFSETTINGS token.
var presets = map[string]Preset{
	"screen":   {Name: "screen", Token: "/screen", Description: "Smallest files, lowest quality (72 dpi images)"},
	"ebook":    {Name: "ebook", Token: "/ebook", Description: "Good balance of size and quality (150 dpi images)"},
	"printer":  {Name: "printer", Token: "/printer", Description: "Higher quality for printing (300 dpi images)"},
	"prepress": {Name: "prepress", Token: "/prepress", Description: "Highest quality, largest files (color preserving)"},
	"default":  {Name: "default", Token: "/default", Description: "Ghostscript's general-purpose defaults"},
}

// DefaultPreset is used when the caller does not select a quality level.
const DefaultPreset = "ebook"

// Token resolves a preset name (case-insensitive) to its Ghostscript
// -dPDFSETTINGS token. Unknown names yield a validation error listing the
// valid choices.
func Token(name string) (string, error) {
	preset, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", services.Wrap(
			services.ErrValidation,
			"ghostscript",
			"preset",
			fmt.Sprintf("unknown preset %q (choose: %s)", name, strings.Join(PresetNames(), ", ")),
			nil,
		)
	}
	return preset.Token, nil
}

// PresetNames returns the valid preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns the full preset descriptions in sorted name order.
func Presets() []Preset {
	result := make([]Preset, 0, len(presets))
	for _, name := range PresetNames() {
		result = append(result, presets[name])
	}
	return result
}

// IsValidPreset reports whether the name resolves to a known preset.
func IsValidPreset(name string) bool {
	_, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
