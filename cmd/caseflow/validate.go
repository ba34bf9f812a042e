package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caseflow/caseflow/internal/config"
)

func newValidateCmd() *cobra.Command {
	var suitePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a suite file without executing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := config.LoadSuite(suitePath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d cases, ok\n", suite.Name, len(suite.Cases))
			return nil
		},
	}

	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "Path to suite file")
	cmd.MarkFlagRequired("suite") //nolint:errcheck

	return cmd
}
