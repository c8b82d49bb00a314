package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdfsqueeze/internal/services"
)

func TestCompressEndToEnd(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.pdf", 2_000_000)
	output := filepath.Join(env.baseDir, "out", "doc-small.pdf")

	stdout, _, err := runCLI(t, []string{"compress", input, output}, env.configPath)
	if err != nil {
		t.Fatalf("compress returned error: %v", err)
	}

	if _, statErr := os.Stat(output); statErr != nil {
		t.Fatalf("expected output file: %v", statErr)
	}
	if !strings.Contains(stdout, "Saved: "+output) {
		t.Fatalf("expected saved line, got %q", stdout)
	}
	if !strings.Contains(stdout, "2.00 MB") {
		t.Fatalf("expected before size in MB, got %q", stdout)
	}
	// The stub writes 10 bytes, so the ratio rounds to 0.0%.
	if !strings.Contains(stdout, "(0.0%)") {
		t.Fatalf("expected ratio, got %q", stdout)
	}
}

func TestCompressRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.pdf", 1000)
	output := filepath.Join(env.baseDir, "doc-small.pdf")

	if _, _, err := runCLI(t, []string{"compress", input, output, "--preset", "screen", "--dpi", "150"}, env.configPath); err != nil {
		t.Fatalf("compress returned error: %v", err)
	}

	stdout, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(stdout, "doc.pdf") {
		t.Fatalf("expected run in history, got %q", stdout)
	}
	if !strings.Contains(stdout, "screen") {
		t.Fatalf("expected preset in history, got %q", stdout)
	}
	if !strings.Contains(stdout, "150") {
		t.Fatalf("expected dpi in history, got %q", stdout)
	}

	stdout, _, err = runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear returned error: %v", err)
	}
	if !strings.Contains(stdout, "Removed 1") {
		t.Fatalf("expected clear summary, got %q", stdout)
	}
}

func TestCompressRejectsMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	missing := filepath.Join(env.baseDir, "nope.pdf")

	_, _, err := runCLI(t, []string{"compress", missing, filepath.Join(env.baseDir, "out.pdf")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "existing PDF") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCompressRejectsWrongExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.txt", 100)

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for wrong extension")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompressAcceptsUppercaseExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "DOC.PDF", 100)

	if _, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf")}, env.configPath); err != nil {
		t.Fatalf("compress returned error: %v", err)
	}
}

func TestCompressRejectsUnknownPreset(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.pdf", 100)

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf"), "--preset", "bogus"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, name := range []string{"screen", "ebook", "printer", "prepress", "default"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %q in error %q", name, err.Error())
		}
	}
}

func TestCompressReportsEngineNotFound(t *testing.T) {
	env := setupCLITestEnv(t)
	// No stub installed; PATH holds only the empty bin directory.
	input := env.writePDF(t, "doc.pdf", 100)

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf")}, env.configPath)
	if err == nil {
		t.Fatal("expected error when engine is missing")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCompressExplicitEnginePathMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.pdf", 100)
	bogus := filepath.Join(env.baseDir, "no-such-gs")

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf"), "--gs", bogus}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing explicit engine path")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), bogus) {
		t.Fatalf("expected explicit path in error %q", err.Error())
	}
}

func TestCompressSurfacesEngineFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, failureStub)
	input := env.writePDF(t, "doc.pdf", 100)

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf")}, env.configPath)
	if err == nil {
		t.Fatal("expected error when engine exits non-zero")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	if !strings.Contains(err.Error(), "error: corrupt xref") {
		t.Fatalf("expected engine stderr in error %q", err.Error())
	}
}

func TestCompressRejectsNegativeDPI(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeEngineStub(t, successStub)
	input := env.writePDF(t, "doc.pdf", 100)

	_, _, err := runCLI(t, []string{"compress", input, filepath.Join(env.baseDir, "out.pdf"), "--dpi", "-10"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for negative dpi")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
