// Package services defines shared utilities consumed by the CLI commands and
// external tool integrations.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so failures carry a
//     classification (configuration, validation, external tool) all the way
//     to the CLI boundary.
//
// Use these helpers when wiring new command logic so error handling stays
// uniform across the tool.
package services
