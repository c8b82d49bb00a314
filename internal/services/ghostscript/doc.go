// Package ghostscript locates the Ghostscript engine and drives PDF
// compression through it.
//
// It exposes the preset-to-token map, a Locate helper that resolves the
// engine binary across platform naming conventions, and a Client that builds
// the pdfwrite argument vector and runs the engine as a child process. Tests
// can swap the command constructor to avoid executing the real engine while
// still asserting on the assembled arguments.
package ghostscript
