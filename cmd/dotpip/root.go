package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/dotpip/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "V", false, messages.RootVersionFlag)
	cmd.AddCommand(newInstallCmd(), newDoctorCmd())
	return cmd
}
