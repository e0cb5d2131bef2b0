// Package cli implements the passgen command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "passgen",
		Short:         "Generate random passwords and check password strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newHashAdminCmd(),
	)

	return root
}
