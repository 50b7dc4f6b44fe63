package doctor

import "os/exec"

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusWarn means the check found something worth fixing that does not block an install.
	StatusWarn Status = "WARN"
	// StatusFail means an install would fail.
	StatusFail Status = "FAIL"
)

// Result is one line of the doctor report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// System resolves executables for the binary check.
type System interface {
	LookPath(file string) (string, error)
}

// RealSystem looks executables up on the process PATH.
type RealSystem struct{}

// LookPath delegates to exec.LookPath.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
