package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "dotpip"
	// RootShort is the short description for the root command.
	RootShort       = "Install Python requirements from dotfile configuration"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Run pip, pipsi, and pipx directives from a config file"

	InstallFlagConfig        = "Path to the task file (default: install.conf.{yaml,yml,json,toml} in the working directory)"
	InstallFlagBaseDirectory = "Directory used to resolve requirements files and run installers (default: the config file's directory)"
	InstallFlagEnvFile       = "Load KEY=VALUE pairs from this .env file into the environment before installing"
	InstallFlagOnly          = "Only run tasks for these directives (repeatable)"
	InstallFlagDryRun        = "Print the commands that would run without running them"
	InstallFlagVerbose       = "Enable debug logging"
	InstallFlagQuiet         = "Only log errors"

	InstallNoConfigFoundFmt     = "no task file found in %s (expected one of %s); pass --config"
	InstallResolveConfigFmt     = "resolve config path %s: %w"
	InstallReadEnvFileFmt       = "read env file %s: %w"
	InstallInvalidEnvFileFmt    = "invalid env file %s: %w"
	InstallSetEnvFmt            = "apply env file %s: %w"
	InstallUnknownDirectiveFmt  = "--only %q is not a supported directive (supported: %s)"
	InstallVerboseQuietConflict = "--verbose and --quiet cannot be used together"
	InstallDryRunHeaderFmt      = "# %s (%s)\n"
	InstallDryRunCommandFmt     = "%s\n"
	InstallDryRunSkippedFmt     = "# %s: %v\n"
	InstallSummarySuccessFmt    = "All %d task(s) completed successfully"
	InstallSummaryFailure       = "Some tasks were not completed successfully"
)
