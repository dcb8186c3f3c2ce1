package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kobzarvs/qgrid/internal/logger"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("QGRID_CONFIG_HOME", dir)
	t.Setenv("QGRID_LOG_FILE", filepath.Join(dir, "test.log"))
	t.Cleanup(func() { logger.L, logger.S = nil, nil })
	return dir
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	a := New(args)
	a.out = &buf
	err := a.Run()
	return buf.String(), err
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"--script"}, {"a", "b"}} {
		if _, err := run(t, args...); !errors.Is(err, errUsage) {
			t.Fatalf("Run(%q) error = %v, want usage", args, err)
		}
	}
}

func TestRunTextFile(t *testing.T) {
	dir := setupEnv(t)
	path := filepath.Join(dir, "screen.txt")
	writeFile(t, path, "hello\n宽 grid\n")

	out, err := run(t, path)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out != "hello\n宽 grid\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRunMissingFile(t *testing.T) {
	dir := setupEnv(t)
	if _, err := run(t, filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatalf("Run error = nil, want error")
	}
}

func TestRunScriptUsesConfigSize(t *testing.T) {
	dir := setupEnv(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[grid]
rows = 2
columns = 4
`)
	script := filepath.Join(dir, "redraw.toml")
	writeFile(t, script, `
[[event]]
kind = "put"
text = "abcdef"

[[event]]
kind = "scroll"
count = -1
`)

	out, err := run(t, "--script", script)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out != "\nabcd\n" {
		t.Fatalf("output = %q, want %q", out, "\nabcd\n")
	}
}

func TestRunScriptBadKind(t *testing.T) {
	dir := setupEnv(t)
	script := filepath.Join(dir, "redraw.toml")
	writeFile(t, script, `
[[event]]
kind = "bogus"
`)
	_, err := run(t, "--script", script)
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("Run error = %v, want unknown kind", err)
	}
}
