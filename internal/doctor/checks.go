package doctor

import (
	"fmt"
	"strings"

	"github.com/conn-castle/dotpip/internal/config"
	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/pip"
	"github.com/conn-castle/dotpip/internal/plugin"
)

var loadConfigFunc = config.LoadConfig

// CheckConfig loads the task file at path. The returned config is nil when loading fails.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, err := loadConfigFunc(path)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	if len(cfg.Tasks) == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigNoTasksFmt, path),
			Recommendation: messages.DoctorConfigNoTasksRecommend,
		}}, cfg
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, len(cfg.Tasks), path),
	}}, cfg
}

// CheckTasks plans every supported task without running it, so missing requirements
// files and malformed entries surface before an install.
func CheckTasks(planner plugin.Planner, tasks []config.Task) []Result {
	var results []Result
	for i, task := range tasks {
		if !pip.IsSupported(task.Directive) {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameTasks,
				Message:        fmt.Sprintf(messages.DoctorTaskUnhandledFmt, i, task.Directive),
				Recommendation: fmt.Sprintf(messages.DoctorTaskUnhandledRecommendFmt, strings.Join(pip.Directives(), ", ")),
			})
			continue
		}

		_, unknown, err := pip.ParseEntry(task.Directive, task.Data)
		if err == nil && len(unknown) > 0 {
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameTasks,
				Message:   fmt.Sprintf(messages.DoctorTaskUnknownKeysFmt, i, task.Directive, strings.Join(unknown, ", ")),
			})
		}

		commands, err := planner.Plan(task.Directive, task.Data)
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameTasks,
				Message:        fmt.Sprintf(messages.DoctorTaskInvalidFmt, i, task.Directive, err),
				Recommendation: messages.DoctorTaskInvalidRecommend,
			})
		case len(commands) == 0:
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.DoctorCheckNameTasks,
				Message:   fmt.Sprintf(messages.DoctorTaskEmptyFmt, i, task.Directive),
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameTasks,
				Message:   fmt.Sprintf(messages.DoctorTaskReadyFmt, i, task.Directive, len(commands)),
			})
		}
	}
	return results
}

// CheckBinaries verifies that every installer the tasks would invoke is on PATH.
// Each executable is checked once, in order of first use.
func CheckBinaries(sys System, tasks []config.Task) []Result {
	var results []Result
	seen := make(map[string]bool)
	for _, task := range tasks {
		entry, _, err := pip.ParseEntry(task.Directive, task.Data)
		if err != nil {
			continue
		}
		name := executableName(entry.BinaryFor(pip.Directive(task.Directive)))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		path, err := sys.LookPath(name)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameBinaries,
				Message:        fmt.Sprintf(messages.DoctorBinaryMissingFmt, name),
				Recommendation: fmt.Sprintf(messages.DoctorBinaryMissingRecommendFmt, name),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameBinaries,
			Message:   fmt.Sprintf(messages.DoctorBinaryFoundFmt, name, path),
		})
	}
	return results
}

// executableName returns the first word of a binary override such as "python3 -m pip".
func executableName(binary string) string {
	fields := strings.Fields(binary)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
