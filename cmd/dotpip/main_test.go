package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"dotpip", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"dotpip", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestMainNoArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"dotpip"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), "install") {
		t.Fatalf("expected help listing install, got %q", out.String())
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"dotpip", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"dotpip", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"dotpip"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainWrappedSilentExit(t *testing.T) {
	orig := executeFunc
	t.Cleanup(func() { executeFunc = orig })
	executeFunc = func([]string, io.Writer, io.Writer) error {
		return errors.Join(errors.New("context"), &SilentExitError{Code: 2})
	}

	code := 0
	runMain([]string{"dotpip"}, io.Discard, io.Discard, func(c int) { code = c })
	if code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"dotpip", "--version"}
	main()
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	if got := versionString(); got != "v1.2.3" {
		t.Fatalf("unexpected version %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "v1.2.3 (commit abc123, built 2026-01-02)" {
		t.Fatalf("unexpected version %q", got)
	}
}

func TestSilentExitErrorMessage(t *testing.T) {
	if got := (&SilentExitError{Code: 4}).Error(); got != "exit 4" {
		t.Fatalf("unexpected message %q", got)
	}
}
