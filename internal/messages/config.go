package messages

// Config messages for task file loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnsupportedFormatFmt  = "%s: unsupported config format %q (use .yaml, .yml, .json, or .toml)"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized config keys: %w"
	ConfigTaskNotMappingFmt     = "%s: tasks[%d] must be a mapping of directive to options"
	ConfigTaskDirectiveCountFmt = "%s: tasks[%d] must contain exactly one directive, found %d"
	ConfigTaskDirectiveEmptyFmt = "%s: tasks[%d] directive name is empty"
	ConfigTaskKeyNotStringFmt   = "%s: tasks[%d] directive name must be a string"
	ConfigDirRequired           = "config directory is required"
)
