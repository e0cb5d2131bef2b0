package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
)

func newHashAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-admin [password]",
		Short: "Print an ADMIN_PASSWORD_HASH value for the API server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}

			if v := crypto.Classify(password); v == crypto.Weak {
				return fmt.Errorf("admin password is %s; use a longer password with more character types", v)
			}

			hash, err := crypto.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
