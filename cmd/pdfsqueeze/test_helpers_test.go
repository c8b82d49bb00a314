package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	binDir     string
}

// setupCLITestEnv prepares an isolated config plus a scratch PATH directory
// for stub engine binaries.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	t.Setenv("PATH", binDir)
	t.Setenv("HOME", base)

	configPath := filepath.Join(base, "config.toml")
	payload := strings.Join([]string{
		"[paths]",
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
		"",
		"[history]",
		"enabled = true",
		`path = "` + filepath.Join(base, "history.db") + `"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{baseDir: base, configPath: configPath, binDir: binDir}
}

// writeEngineStub installs a fake gs binary. The script copies a fixed body
// into whatever -sOutputFile= argument it receives.
func (env *cliTestEnv) writeEngineStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(env.binDir, "gs")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write engine stub: %v", err)
	}
	return path
}

const successStub = `#!/bin/sh
out=""
for arg in "$@"; do
  case "$arg" in
    -sOutputFile=*) out="${arg#-sOutputFile=}" ;;
  esac
done
if [ -n "$out" ]; then
  printf 'compressed' > "$out"
fi
exit 0
`

const failureStub = `#!/bin/sh
echo "processing page 1"
echo "error: corrupt xref" >&2
exit 1
`

func (env *cliTestEnv) writePDF(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(env.baseDir, name)
	if err := os.WriteFile(path, bytes.Repeat([]byte("a"), size), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
