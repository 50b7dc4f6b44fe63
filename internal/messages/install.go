package messages

// Installer plugin messages.
const (
	// PipRequirementsMissing is reported when the file key is absent, empty, or does not name a regular file.
	PipRequirementsMissing     = "Requirements file does not exist."
	PipRequirementsMissingFmt  = "Requirements file does not exist: %s"
	PipRequirementsNotFileFmt  = "Requirements path is not a regular file: %s"
	PipRequirementsStatFmt     = "Requirements file %s could not be checked: %v"
	PipRequirementsReadFmt     = "Failed to read requirements file %s: %v"
	PipExpandHomeFmt           = "Failed to expand home directory in %q: %v"
	PipInvalidEntryFmt         = "Invalid %s configuration: expected a file path or a mapping, got %T"
	PipDecodeEntryFmt          = "Invalid %s configuration: %v"
	PipUnknownKeysFmt          = "Ignoring unrecognized %s option(s): %s"
	PipUnsupportedDirectiveFmt = "Directive %q is not handled by the pip plugin"
	PipInstallFailedFmt        = "Failed to install requirements: %s exited with code %d"
	PipInstallStartFailedFmt   = "Failed to install requirements: could not run %q: %v"
	PipInstallingFmt           = "Installing %s with %s"
	PipInstallNoopFmt          = "%s exited with code 1; treating as already satisfied"
	PipNothingToInstallFmt     = "No requirements to install for %s"
	PipInstalledAllFmt         = "Installed %d requirement reference(s) for %s"
	PipOperationFailed         = "operation failed"
)
