package pip

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// shellPath is the interpreter used for install commands.
const shellPath = "/bin/sh"

// Invocation is a single backend command run through the shell.
type Invocation struct {
	// Command is the full shell command line.
	Command string
	// Dir is the working directory for the process.
	Dir string
	// Stdout and Stderr attach the process streams to the host's; otherwise output is discarded.
	Stdout bool
	Stderr bool
}

// System abstracts the OS operations needed by the installer.
// Tests substitute a fake to observe invocations without spawning processes.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	LookupEnv(key string) (string, bool)
	// Run executes inv and returns its exit code. The error is non-nil only when
	// the process could not be started.
	Run(ctx context.Context, inv Invocation) (int, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// LookupEnv returns the value of the environment variable named by key and whether it is set.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Run executes inv.Command with /bin/sh -c. Stdin reads from the null device;
// stdout and stderr go to the null device unless surfaced by inv.
func (RealSystem) Run(ctx context.Context, inv Invocation) (int, error) {
	cmd := exec.CommandContext(ctx, shellPath, "-c", inv.Command)
	cmd.Dir = inv.Dir
	if inv.Stdout {
		cmd.Stdout = os.Stdout
	}
	if inv.Stderr {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
