package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/dotpip/internal/config"
	"github.com/conn-castle/dotpip/internal/dispatch"
	"github.com/conn-castle/dotpip/internal/envfile"
	"github.com/conn-castle/dotpip/internal/messages"
	"github.com/conn-castle/dotpip/internal/pip"
	"github.com/conn-castle/dotpip/internal/plugin"
	"github.com/conn-castle/dotpip/internal/terminal"
)

var setenv = os.Setenv

type installOptions struct {
	configPath    string
	baseDirectory string
	envFile       string
	only          []string
	dryRun        bool
	verbose       bool
	quiet         bool
}

func newInstallCmd() *cobra.Command {
	var opts installOptions
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", messages.InstallFlagConfig)
	flags.StringVarP(&opts.baseDirectory, "base-directory", "d", "", messages.InstallFlagBaseDirectory)
	flags.StringVar(&opts.envFile, "env-file", "", messages.InstallFlagEnvFile)
	flags.StringSliceVar(&opts.only, "only", nil, messages.InstallFlagOnly)
	flags.BoolVar(&opts.dryRun, "dry-run", false, messages.InstallFlagDryRun)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.InstallFlagVerbose)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, messages.InstallFlagQuiet)
	return cmd
}

func runInstall(cmd *cobra.Command, opts installOptions) error {
	if opts.verbose && opts.quiet {
		return fmt.Errorf(messages.InstallVerboseQuietConflict)
	}
	for _, directive := range opts.only {
		if !pip.IsSupported(directive) {
			return fmt.Errorf(messages.InstallUnknownDirectiveFmt, directive, strings.Join(pip.Directives(), ", "))
		}
	}

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

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	tasks := cfg.Only(opts.only)

	logger := newLogger(cmd.ErrOrStderr(), logLevel(opts.verbose, opts.quiet))
	host := plugin.NewContext(baseDir, logger)
	dispatcher := dispatch.New(logger, pip.New(host))

	if opts.dryRun {
		if !dispatcher.Plan(cmd.OutOrStdout(), tasks) {
			return &SilentExitError{Code: 1}
		}
		return nil
	}

	out := cmd.OutOrStdout()
	colorize := terminal.IsTerminalWriter(out)
	if dispatcher.Dispatch(cmd.Context(), tasks) {
		if !opts.quiet {
			_, _ = summaryColor(color.FgGreen, colorize).Fprintf(out, messages.InstallSummarySuccessFmt+"\n", len(tasks))
		}
		return nil
	}
	_, _ = summaryColor(color.FgRed, colorize).Fprintln(cmd.ErrOrStderr(), messages.InstallSummaryFailure)
	return &SilentExitError{Code: 1}
}

// resolveConfigPath returns the absolute task file path, searching cwd when none was given.
func resolveConfigPath(cwd string, flagValue string) (string, error) {
	if flagValue != "" {
		return absFrom(cwd, flagValue), nil
	}
	path, found, err := config.FindConfig(cwd)
	if err != nil {
		return "", fmt.Errorf(messages.InstallResolveConfigFmt, cwd, err)
	}
	if !found {
		return "", fmt.Errorf(messages.InstallNoConfigFoundFmt, cwd, strings.Join(config.DefaultConfigNames, ", "))
	}
	return path, nil
}

// loadEnvFile exports every variable in the .env file at path.
func loadEnvFile(path string) error {
	env, err := envfile.Load(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Errorf(messages.InstallReadEnvFileFmt, path, err)
		}
		return fmt.Errorf(messages.InstallInvalidEnvFileFmt, path, err)
	}
	if err := envfile.Apply(env, setenv); err != nil {
		return fmt.Errorf(messages.InstallSetEnvFmt, path, err)
	}
	return nil
}

func absFrom(cwd string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

func summaryColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
