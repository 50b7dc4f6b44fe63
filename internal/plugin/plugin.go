// Package plugin defines the contract between the task dispatcher and directive plugins.
package plugin

import (
	"context"

	"github.com/charmbracelet/log"
)

// Plugin handles one or more configuration directives.
type Plugin interface {
	// CanHandle reports whether the plugin accepts directive. It must not have side effects.
	CanHandle(directive string) bool

	// Handle runs directive with its raw configuration value and reports success.
	// Failures are logged through the host logger rather than returned.
	Handle(ctx context.Context, directive string, data any) bool
}

// Planner is implemented by plugins that can describe the commands they would run.
type Planner interface {
	// Plan returns the commands Handle would run for directive and data, or the
	// validation error Handle would log.
	Plan(directive string, data any) ([]string, error)
}

// Context carries the host state shared with every plugin invocation.
type Context struct {
	baseDirectory string
	logger        *log.Logger
}

// NewContext returns a Context rooted at baseDirectory.
// A nil logger falls back to log.Default().
func NewContext(baseDirectory string, logger *log.Logger) Context {
	if logger == nil {
		logger = log.Default()
	}
	return Context{baseDirectory: baseDirectory, logger: logger}
}

// BaseDirectory returns the directory relative paths are resolved against and
// in which external commands run.
func (c Context) BaseDirectory() string {
	return c.baseDirectory
}

// Logger returns the host logger.
func (c Context) Logger() *log.Logger {
	if c.logger == nil {
		return log.Default()
	}
	return c.logger
}
