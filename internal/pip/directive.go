package pip

// Directive names a supported installation backend.
type Directive string

const (
	// DirectivePip installs with pip from a requirements file.
	DirectivePip Directive = "pip"
	// DirectivePipsi installs each requirement into its own pipsi virtualenv.
	DirectivePipsi Directive = "pipsi"
	// DirectivePipx installs each requirement into its own pipx virtualenv.
	DirectivePipx Directive = "pipx"
)

var supportedDirectives = []Directive{
	DirectivePip,
	DirectivePipsi,
	DirectivePipx,
}

// Directives returns the supported directive names in a stable order.
func Directives() []string {
	names := make([]string, 0, len(supportedDirectives))
	for _, d := range supportedDirectives {
		names = append(names, string(d))
	}
	return names
}

// IsSupported reports whether name is one of the supported directives.
func IsSupported(name string) bool {
	for _, d := range supportedDirectives {
		if string(d) == name {
			return true
		}
	}
	return false
}

// defaultBinary returns the executable used when no binary override is configured.
func (d Directive) defaultBinary() string {
	return string(d)
}

// resolver returns the reference strategy for the directive.
func (d Directive) resolver() Resolver {
	if d == DirectivePip {
		return requirementsFlag{}
	}
	return perLine{}
}

// supportsUserFlag reports whether --user is passed through to the backend.
// pipsi and pipx manage isolated environments themselves.
func (d Directive) supportsUserFlag() bool {
	return d == DirectivePip
}
