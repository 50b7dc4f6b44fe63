package pip

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/plugin"
)

// ErrOperationFailed is wrapped by every validation and installation error.
var ErrOperationFailed = errors.New(messages.PipOperationFailed)

// userFlag asks pip to install into the user site directory.
const userFlag = "--user"

// acceptedExitCodes are backend exit codes that do not stop the batch.
// pip, pipsi, and pipx use 1 for "already installed" style outcomes but also for
// generic errors; both are accepted.
var acceptedExitCodes = map[int]bool{0: true, 1: true}

// Plugin installs requirements for the pip, pipsi, and pipx directives.
type Plugin struct {
	host plugin.Context
	sys  System
}

var (
	_ plugin.Plugin  = (*Plugin)(nil)
	_ plugin.Planner = (*Plugin)(nil)
)

// Option configures a Plugin.
type Option func(*Plugin)

// WithSystem replaces the OS seam used to stat, read, and run.
func WithSystem(sys System) Option {
	return func(p *Plugin) {
		p.sys = sys
	}
}

// New returns a Plugin bound to the host context.
func New(host plugin.Context, opts ...Option) *Plugin {
	p := &Plugin{host: host, sys: RealSystem{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CanHandle reports whether directive is pip, pipsi, or pipx.
func (p *Plugin) CanHandle(directive string) bool {
	return IsSupported(directive)
}

// Handle installs the requirements described by data and reports whether every
// reference installed with an accepted exit code. Errors are logged, not returned.
func (p *Plugin) Handle(ctx context.Context, directive string, data any) bool {
	if err := p.install(ctx, directive, data); err != nil {
		p.host.Logger().Error(err.Error())
		return false
	}
	return true
}

// Plan returns the shell commands Handle would run for data, without running them.
func (p *Plugin) Plan(directive string, data any) ([]string, error) {
	invocations, err := p.plan(directive, data)
	if err != nil {
		return nil, err
	}
	commands := make([]string, 0, len(invocations))
	for _, inv := range invocations {
		commands = append(commands, inv.Command)
	}
	return commands, nil
}

// plan validates data and builds the ordered invocations for directive.
func (p *Plugin) plan(directive string, data any) ([]Invocation, error) {
	if !IsSupported(directive) {
		return nil, fmt.Errorf("%w: "+messages.PipUnsupportedDirectiveFmt, ErrOperationFailed, directive)
	}
	d := Directive(directive)

	entry, unknown, err := normalizeEntry(d, data)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		p.host.Logger().Warn(unknownKeysMessage(d, unknown))
	}

	path, err := resolveRequirementsPath(p.sys, p.host.BaseDirectory(), entry.File)
	if err != nil {
		return nil, err
	}
	entry.File = path

	refs, err := d.resolver().References(p.sys, entry.File)
	if err != nil {
		return nil, err
	}

	opts := entry.Options()
	binary := entry.BinaryFor(d)
	flag := ""
	if opts.UserDirectory && d.supportsUserFlag() {
		flag = userFlag
	}

	invocations := make([]Invocation, 0, len(refs))
	for _, ref := range refs {
		invocations = append(invocations, Invocation{
			Command: installCommand(binary, flag, ref),
			Dir:     p.host.BaseDirectory(),
			Stdout:  opts.Stdout,
			Stderr:  opts.Stderr,
		})
	}
	return invocations, nil
}

// install runs every planned invocation in order and stops at the first
// unaccepted exit code.
func (p *Plugin) install(ctx context.Context, directive string, data any) error {
	invocations, err := p.plan(directive, data)
	if err != nil {
		return err
	}

	logger := p.host.Logger()
	if len(invocations) == 0 {
		logger.Debugf(messages.PipNothingToInstallFmt, directive)
		return nil
	}

	for _, inv := range invocations {
		logger.Debugf(messages.PipInstallingFmt, inv.Command, directive)
		code, err := p.sys.Run(ctx, inv)
		if err != nil {
			return fmt.Errorf("%w: "+messages.PipInstallStartFailedFmt, ErrOperationFailed, inv.Command, err)
		}
		if !acceptedExitCodes[code] {
			return fmt.Errorf("%w: "+messages.PipInstallFailedFmt, ErrOperationFailed, inv.Command, code)
		}
		if code == 1 {
			logger.Debugf(messages.PipInstallNoopFmt, inv.Command)
		}
	}
	logger.Debugf(messages.PipInstalledAllFmt, len(invocations), directive)
	return nil
}

// installCommand formats "<binary> install [flag] <reference>".
func installCommand(binary string, flag string, reference string) string {
	parts := []string{binary, "install"}
	if flag != "" {
		parts = append(parts, flag)
	}
	parts = append(parts, reference)
	return strings.Join(parts, " ")
}
