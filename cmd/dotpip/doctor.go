package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/dotpip/internal/doctor"
	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/pip"
	"github.com/conn-castle/dotpip/internal/plugin"
)

var doctorSystem doctor.System = doctor.RealSystem{}

type doctorOptions struct {
	configPath    string
	baseDirectory string
	envFile       string
}

func newDoctorCmd() *cobra.Command {
	var opts doctorOptions
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", messages.InstallFlagConfig)
	flags.StringVarP(&opts.baseDirectory, "base-directory", "d", "", messages.InstallFlagBaseDirectory)
	flags.StringVar(&opts.envFile, "env-file", "", messages.InstallFlagEnvFile)
	return cmd
}

func runDoctor(cmd *cobra.Command, opts doctorOptions) error {
	out := cmd.OutOrStdout()
	cwd, err := getwd()
	if err != nil {
		return err
	}
	configPath, err := resolveConfigPath(cwd, opts.configPath)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(configPath)
	if opts.baseDirectory != "" {
		baseDir = absFrom(cwd, opts.baseDirectory)
	}
	if opts.envFile != "" {
		if err := loadEnvFile(absFrom(cwd, opts.envFile)); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, configPath)

	results, cfg := doctor.CheckConfig(configPath)
	if cfg != nil {
		// Plan warnings are reported as results; keep the plugin logger quiet.
		logger := newLogger(io.Discard, logLevel(false, true))
		planner := pip.New(plugin.NewContext(baseDir, logger))
		results = append(results, doctor.CheckTasks(planner, cfg.Tasks)...)
		results = append(results, doctor.CheckBinaries(doctorSystem, cfg.Tasks)...)
	}

	hasWarn := false
	for _, r := range results {
		printResult(out, r)
		if r.Status == doctor.StatusWarn {
			hasWarn = true
		}
	}

	_, _ = fmt.Fprintln(out)
	switch {
	case doctor.HasFailure(results):
		_, _ = color.New(color.FgRed).Fprintln(out, messages.DoctorFailureSummary)
		return &SilentExitError{Code: 1}
	case hasWarn:
		_, _ = color.New(color.FgYellow).Fprintln(out, messages.DoctorWarningSummary)
	default:
		_, _ = color.New(color.FgGreen).Fprintln(out, messages.DoctorSuccessSummary)
	}
	return nil
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
