package messages

// System messages for task dispatch and environment loading.
const (
	// DispatchUnhandledDirectiveFmt is logged when no plugin accepts a directive.
	DispatchUnhandledDirectiveFmt = "Action %s not handled"
	DispatchTaskFailedFmt         = "Task %d (%s) failed"
	DispatchTaskStartFmt          = "Running task %d (%s)"

	// EnvfileLineErrorFmt formats envfile line errors.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "invalid trailing characters after quoted value"
)
