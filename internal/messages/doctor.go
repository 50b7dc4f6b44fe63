package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the task file, requirements files, and installers without installing anything"

	DoctorHealthCheckFmt = "🏥 Checking dotpip setup for %s...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameTasks    = "Tasks"
	DoctorCheckNameBinaries = "Binaries"

	DoctorConfigLoadFailedFmt    = "Failed to load task file: %v"
	DoctorConfigLoadRecommend    = "Fix the task file syntax. Each task must be a single-key mapping such as \"- pip: requirements.txt\"."
	DoctorConfigNoTasksFmt       = "%s contains no tasks"
	DoctorConfigNoTasksRecommend = "Add a pip, pipsi, or pipx task to the task file."
	DoctorConfigLoadedFmt        = "Loaded %d task(s) from %s"

	DoctorTaskUnhandledFmt          = "Task %d: directive %q is not handled by dotpip"
	DoctorTaskUnhandledRecommendFmt = "Supported directives: %s."
	DoctorTaskUnknownKeysFmt        = "Task %d (%s): unrecognized option(s) will be ignored: %s"
	DoctorTaskInvalidFmt            = "Task %d (%s): %v"
	DoctorTaskInvalidRecommend      = "Check the file path. Relative paths are resolved against the base directory."
	DoctorTaskEmptyFmt              = "Task %d (%s): requirements file lists nothing to install"
	DoctorTaskReadyFmt              = "Task %d (%s): %d install command(s) ready"

	DoctorBinaryMissingFmt          = "%s not found on PATH"
	DoctorBinaryMissingRecommendFmt = "Install %s or set the task's binary option to an available executable."
	DoctorBinaryFoundFmt            = "%s found at %s"

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorWarningSummary = "⚠️  Checks passed with warnings."
	DoctorSuccessSummary = "✅ All systems go. dotpip is ready to install."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
