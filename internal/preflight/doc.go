// Package preflight verifies the host environment before compression work:
// directory access for logs and history, and availability of the external
// Ghostscript engine. The status command renders its results.
package preflight
