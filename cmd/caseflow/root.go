package main

import (
	"github.com/spf13/cobra"

	"github.com/caseflow/caseflow/internal/handler"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(registry *handler.Registry) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "caseflow",
		Short:         "Caseflow runs suites of ordered test cases with lifecycle control",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRunCmd(flags, registry))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
