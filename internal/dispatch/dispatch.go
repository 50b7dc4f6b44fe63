// Package dispatch routes configured tasks to the plugins that handle their directives.
package dispatch

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/dotpip/internal/config"
	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/plugin"
)

// Dispatcher runs tasks in order against an ordered plugin list.
type Dispatcher struct {
	plugins []plugin.Plugin
	logger  *log.Logger
}

// New returns a Dispatcher. Earlier plugins win when several accept a directive.
func New(logger *log.Logger, plugins ...plugin.Plugin) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{plugins: plugins, logger: logger}
}

// Dispatch runs every task and reports whether all of them succeeded.
// A failed or unhandled task is logged and does not stop later tasks.
func (d *Dispatcher) Dispatch(ctx context.Context, tasks []config.Task) bool {
	success := true
	for i, task := range tasks {
		d.logger.Debugf(messages.DispatchTaskStartFmt, i+1, task.Directive)
		p := d.pluginFor(task.Directive)
		if p == nil {
			d.logger.Errorf(messages.DispatchUnhandledDirectiveFmt, task.Directive)
			success = false
			continue
		}
		if !p.Handle(ctx, task.Directive, task.Data) {
			d.logger.Errorf(messages.DispatchTaskFailedFmt, i+1, task.Directive)
			success = false
		}
	}
	return success
}

// Plan writes the commands each task would run to w without running them.
// It reports false when any task is unhandled, cannot be planned, or fails validation.
func (d *Dispatcher) Plan(w io.Writer, tasks []config.Task) bool {
	success := true
	for i, task := range tasks {
		label := fmt.Sprintf("task %d", i+1)
		p := d.pluginFor(task.Directive)
		planner, ok := p.(plugin.Planner)
		if p == nil || !ok {
			_, _ = fmt.Fprintf(w, messages.InstallDryRunSkippedFmt, task.Directive, fmt.Sprintf(messages.DispatchUnhandledDirectiveFmt, task.Directive))
			success = false
			continue
		}
		commands, err := planner.Plan(task.Directive, task.Data)
		if err != nil {
			_, _ = fmt.Fprintf(w, messages.InstallDryRunSkippedFmt, task.Directive, err)
			success = false
			continue
		}
		_, _ = fmt.Fprintf(w, messages.InstallDryRunHeaderFmt, task.Directive, label)
		for _, command := range commands {
			_, _ = fmt.Fprintf(w, messages.InstallDryRunCommandFmt, command)
		}
	}
	return success
}

// pluginFor returns the first plugin that accepts directive, or nil.
func (d *Dispatcher) pluginFor(directive string) plugin.Plugin {
	for _, p := range d.plugins {
		if p.CanHandle(directive) {
			return p
		}
	}
	return nil
}
