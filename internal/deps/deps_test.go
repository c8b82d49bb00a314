package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: ""},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail, got %#v", results[2])
	}
}

func TestResolveGhostscriptCommandPrefersConfigured(t *testing.T) {
	if got := ResolveGhostscriptCommand("/opt/gs/bin/gs"); got != "/opt/gs/bin/gs" {
		t.Fatalf("expected configured binary, got %q", got)
	}
}

func TestResolveGhostscriptCommandDiscovers(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "gs")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	if got := ResolveGhostscriptCommand(""); got != stub {
		t.Fatalf("expected discovered stub %q, got %q", stub, got)
	}
}

func TestResolveGhostscriptCommandFallsBackToName(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	if got := ResolveGhostscriptCommand(""); got != "gs" {
		t.Fatalf("expected generic name fallback, got %q", got)
	}
}
