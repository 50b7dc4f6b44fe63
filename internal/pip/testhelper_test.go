package pip

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/dotpip/internal/plugin"
)

// fakeSystem uses the real filesystem but records invocations instead of spawning processes.
type fakeSystem struct {
	RealSystem
	env      map[string]string
	codes    map[string]int
	startErr error
	calls    []Invocation
}

func (f *fakeSystem) LookupEnv(key string) (string, bool) {
	value, ok := f.env[key]
	return value, ok
}

func (f *fakeSystem) Run(_ context.Context, inv Invocation) (int, error) {
	f.calls = append(f.calls, inv)
	if f.startErr != nil {
		return -1, f.startErr
	}
	return f.codes[inv.Command], nil
}

func (f *fakeSystem) commands() []string {
	var out []string
	for _, inv := range f.calls {
		out = append(out, inv.Command)
	}
	return out
}

// newTestPlugin returns a plugin rooted at baseDir with a fake system and a captured log.
func newTestPlugin(t *testing.T, baseDir string) (*Plugin, *fakeSystem, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sys := &fakeSystem{env: map[string]string{}, codes: map[string]int{}}
	return New(plugin.NewContext(baseDir, logger), WithSystem(sys)), sys, &buf
}

// newHostContext returns a host context with logging discarded.
func newHostContext(baseDir string) plugin.Context {
	var buf bytes.Buffer
	return plugin.NewContext(baseDir, log.New(&buf))
}
