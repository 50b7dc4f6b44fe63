package pip

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/dotpip/internal/messages"
)

// Resolver turns a resolved requirements file into the ordered references passed to "install".
type Resolver interface {
	References(sys System, path string) ([]string, error)
}

// requirementsFlag hands the whole file to a backend that reads requirements files natively.
type requirementsFlag struct{}

// References returns a single "-r <path>" reference.
func (requirementsFlag) References(_ System, path string) ([]string, error) {
	return []string{"-r " + path}, nil
}

// perLine expands the file into one reference per requirement line.
type perLine struct{}

// References returns every non-blank line that does not start with '#', in file order.
func (perLine) References(sys System, path string) ([]string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.PipRequirementsReadFmt, ErrOperationFailed, path, err)
	}

	var refs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	return refs, nil
}

// resolveRequirementsPath expands environment variables and "~" in file, anchors it
// at baseDir when relative, and checks that the result is a regular file.
func resolveRequirementsPath(sys System, baseDir string, file string) (string, error) {
	if strings.TrimSpace(file) == "" {
		return "", fmt.Errorf("%w: "+messages.PipRequirementsMissing, ErrOperationFailed)
	}

	expanded := expandVars(file, sys.LookupEnv)
	expanded, err := homedir.Expand(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: "+messages.PipExpandHomeFmt, ErrOperationFailed, file, err)
	}

	path := expanded
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	path = filepath.Clean(path)

	info, err := sys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: "+messages.PipRequirementsMissingFmt, ErrOperationFailed, path)
		}
		return "", fmt.Errorf("%w: "+messages.PipRequirementsStatFmt, ErrOperationFailed, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: "+messages.PipRequirementsNotFileFmt, ErrOperationFailed, path)
	}
	return path, nil
}

// varPattern matches $NAME and ${NAME} references.
var varPattern = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)

// expandVars replaces $NAME and ${NAME} with their values. References to unset
// variables are left as written so a typo cannot turn a relative path absolute.
func expandVars(s string, lookup func(string) (string, bool)) string {
	return varPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(ref[1:], "{"), "}")
		if name == "" {
			return ref
		}
		if value, ok := lookup(name); ok {
			return value
		}
		return ref
	})
}
