package doctor

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/dotpip/internal/config"
	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/pip"
	"github.com/conn-castle/dotpip/internal/plugin"
)

type fakeLookPath map[string]string

func (f fakeLookPath) LookPath(file string) (string, error) {
	if path, ok := f[file]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newPlanner(base string) *pip.Plugin {
	return pip.New(plugin.NewContext(base, log.New(io.Discard)))
}

func statuses(results []Result) []Status {
	out := make([]Status, 0, len(results))
	for _, r := range results {
		out = append(out, r.Status)
	}
	return out
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "install.conf.yaml", "- pip: requirements.txt\n- pipx: tools.txt\n")
	results, cfg := CheckConfig(path)
	if cfg == nil || len(cfg.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %#v", cfg)
	}
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %#v", results)
	}
	if results[0].CheckName != messages.DoctorCheckNameConfig {
		t.Fatalf("check name = %q", results[0].CheckName)
	}

	empty := writeFile(t, dir, "empty.yaml", "[]\n")
	results, cfg = CheckConfig(empty)
	if cfg == nil {
		t.Fatal("expected config for empty task list")
	}
	if results[0].Status != StatusWarn {
		t.Fatalf("expected warning, got %s", results[0].Status)
	}

	broken := writeFile(t, dir, "broken.yaml", "- pip: a.txt\n  pipx: b.txt\n")
	results, cfg = CheckConfig(broken)
	if cfg != nil {
		t.Fatal("expected nil config on load failure")
	}
	if results[0].Status != StatusFail || results[0].Recommendation == "" {
		t.Fatalf("unexpected result: %#v", results[0])
	}
}

func TestCheckConfigUsesLoader(t *testing.T) {
	orig := loadConfigFunc
	t.Cleanup(func() { loadConfigFunc = orig })
	loadConfigFunc = func(string) (*config.Config, error) {
		return nil, errors.New("boom")
	}

	results, cfg := CheckConfig("ignored")
	if cfg != nil {
		t.Fatal("expected nil config")
	}
	if !strings.Contains(results[0].Message, "boom") {
		t.Fatalf("message = %q", results[0].Message)
	}
}

func TestCheckTasks(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "requirements.txt", "flask\n")
	writeFile(t, base, "tools.txt", "black\nhttpie\n")
	writeFile(t, base, "comments.txt", "# nothing yet\n\n")

	tasks := []config.Task{
		{Directive: "pip", Data: "requirements.txt"},
		{Directive: "pipx", Data: map[string]any{"file": "tools.txt", "colour": true}},
		{Directive: "pipsi", Data: "comments.txt"},
		{Directive: "pip", Data: "missing.txt"},
		{Directive: "brew", Data: "Brewfile"},
	}
	results := CheckTasks(newPlanner(base), tasks)

	want := []Status{StatusOK, StatusWarn, StatusOK, StatusWarn, StatusFail, StatusWarn}
	got := statuses(results)
	if len(got) != len(want) {
		t.Fatalf("statuses = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statuses = %v, want %v", got, want)
		}
	}
	if !strings.Contains(results[1].Message, "colour") {
		t.Fatalf("unknown key warning = %q", results[1].Message)
	}
	if !strings.Contains(results[2].Message, "2 install command(s)") {
		t.Fatalf("ready message = %q", results[2].Message)
	}
	if !strings.Contains(results[4].Message, "missing.txt") {
		t.Fatalf("failure message = %q", results[4].Message)
	}
	if !strings.Contains(results[5].Recommendation, "pip, pipsi, pipx") {
		t.Fatalf("recommendation = %q", results[5].Recommendation)
	}
}

func TestCheckBinaries(t *testing.T) {
	tasks := []config.Task{
		{Directive: "pip", Data: "a.txt"},
		{Directive: "pip", Data: map[string]any{"file": "b.txt", "binary": "python3 -m pip"}},
		{Directive: "pipx", Data: "c.txt"},
		{Directive: "pip", Data: "d.txt"},
		{Directive: "pipsi", Data: 42},
		{Directive: "brew", Data: "Brewfile"},
	}
	sys := fakeLookPath{"pip": "/usr/bin/pip", "python3": "/usr/bin/python3"}

	results := CheckBinaries(sys, tasks)
	if len(results) != 3 {
		t.Fatalf("expected one result per distinct executable, got %#v", results)
	}
	if results[0].Status != StatusOK || !strings.Contains(results[0].Message, "/usr/bin/pip") {
		t.Fatalf("pip result = %#v", results[0])
	}
	if results[1].Status != StatusOK || !strings.HasPrefix(results[1].Message, "python3 ") {
		t.Fatalf("python3 result = %#v", results[1])
	}
	if results[2].Status != StatusFail || !strings.Contains(results[2].Recommendation, "pipx") {
		t.Fatalf("pipx result = %#v", results[2])
	}
}

func TestHasFailure(t *testing.T) {
	if HasFailure([]Result{{Status: StatusOK}, {Status: StatusWarn}}) {
		t.Fatal("warnings are not failures")
	}
	if !HasFailure([]Result{{Status: StatusOK}, {Status: StatusFail}}) {
		t.Fatal("expected failure")
	}
}

func TestExecutableName(t *testing.T) {
	cases := map[string]string{
		"pip":                 "pip",
		"  python3 -m pip ":   "python3",
		"/opt/py/bin/pip3 -q": "/opt/py/bin/pip3",
		"":                    "",
	}
	for in, want := range cases {
		if got := executableName(in); got != want {
			t.Errorf("executableName(%q) = %q, want %q", in, got, want)
		}
	}
}
