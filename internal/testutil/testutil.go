package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that records its arguments and exits
// with the provided code. Each call appends one line with the space-joined arguments to
// name.calls in dir; see RecordedCalls.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	logPath := filepath.Join(dir, name+".calls")
	content := []byte(fmt.Sprintf("#!/bin/sh\necho \"$*\" >> '%s'\nexit %d\n", logPath, exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteStubExitOn writes a recording stub that exits with failCode when its last argument
// equals failArg and exits 0 otherwise.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExitOn(t *testing.T, dir string, name string, failArg string, failCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	logPath := filepath.Join(dir, name+".calls")
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\necho \"$*\" >> '%s'\nfor last in \"$@\"; do :; done\nif [ \"$last\" = \"%s\" ]; then exit %d; fi\nexit 0\n",
		logPath, failArg, failCode,
	))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// RecordedCalls returns the argument lines recorded by the stub named name in dir.
// A stub that was never run yields nil.
func RecordedCalls(t *testing.T, dir string, name string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name+".calls"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub calls: %v", err)
	}
	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// BoolPtr returns a pointer to v.
// v is the boolean value to take the address of.
func BoolPtr(v bool) *bool {
	return &v
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
