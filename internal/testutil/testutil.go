// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(dir, name), content, 0o644)
}

// WriteConfig writes content to build_config.json in a fresh temporary
// directory and returns its path.
func WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "build_config.json", content)
}

// FakeBundler writes an executable shell script that records each argument
// on its own line in argsFile and exits with exitCode. Tests using it are
// skipped on hosts without a POSIX shell.
func FakeBundler(t *testing.T, exitCode int) (script, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake bundler requires a POSIX shell")
	}
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	content := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\nexit %d\n", argsFile, exitCode)
	script = writeFile(t, filepath.Join(dir, "bundler"), content, 0o755)
	return script, argsFile
}

// RecordedArgs returns the arguments a FakeBundler run recorded, or nil if
// the bundler never ran.
func RecordedArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read recorded args %s: %v", argsFile, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
