package pip

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/conn-castle/dotpip/internal/messages"
)

// Entry is a normalized directive configuration.
type Entry struct {
	File   string `mapstructure:"file"`
	Binary string `mapstructure:"binary"`
	User   *bool  `mapstructure:"user"`
	Stdout *bool  `mapstructure:"stdout"`
	Stderr *bool  `mapstructure:"stderr"`
}

// Options are the run-time switches resolved from an Entry.
type Options struct {
	Stdout        bool
	Stderr        bool
	UserDirectory bool
}

// Options resolves the entry's optional switches; unset values are off.
func (e Entry) Options() Options {
	return Options{
		Stdout:        boolValue(e.Stdout),
		Stderr:        boolValue(e.Stderr),
		UserDirectory: boolValue(e.User),
	}
}

// BinaryFor returns the configured binary override, or the directive's default executable.
func (e Entry) BinaryFor(directive Directive) string {
	if e.Binary != "" {
		return e.Binary
	}
	return directive.defaultBinary()
}

// normalizeEntry converts raw directive data into an Entry.
// A bare string is treated as the requirements file path. Unknown mapping keys are
// returned so the caller can report them.
func normalizeEntry(directive Directive, data any) (Entry, []string, error) {
	switch v := data.(type) {
	case string:
		return Entry{File: v}, nil, nil
	case Entry:
		return v, nil, nil
	case *Entry:
		if v == nil {
			return Entry{}, nil, fmt.Errorf("%w: "+messages.PipInvalidEntryFmt, ErrOperationFailed, directive, data)
		}
		return *v, nil, nil
	case map[string]any, map[any]any:
		var entry Entry
		var md mapstructure.Metadata
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Metadata: &md,
			Result:   &entry,
		})
		if err != nil {
			return Entry{}, nil, fmt.Errorf("%w: "+messages.PipDecodeEntryFmt, ErrOperationFailed, directive, err)
		}
		if err := decoder.Decode(v); err != nil {
			return Entry{}, nil, fmt.Errorf("%w: "+messages.PipDecodeEntryFmt, ErrOperationFailed, directive, err)
		}
		unused := append([]string(nil), md.Unused...)
		sort.Strings(unused)
		return entry, unused, nil
	default:
		return Entry{}, nil, fmt.Errorf("%w: "+messages.PipInvalidEntryFmt, ErrOperationFailed, directive, data)
	}
}

// unknownKeysMessage formats unrecognized option keys for a warning.
func unknownKeysMessage(directive Directive, keys []string) string {
	return fmt.Sprintf(messages.PipUnknownKeysFmt, directive, strings.Join(keys, ", "))
}

func boolValue(v *bool) bool {
	return v != nil && *v
}

// ParseEntry validates directive and normalizes its raw data without touching the
// filesystem. Unknown mapping keys are returned sorted.
func ParseEntry(directive string, data any) (Entry, []string, error) {
	if !IsSupported(directive) {
		return Entry{}, nil, fmt.Errorf("%w: "+messages.PipUnsupportedDirectiveFmt, ErrOperationFailed, directive)
	}
	return normalizeEntry(Directive(directive), data)
}
