package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Classify the strength of a password",
		Long: `Classify the strength of a password as Weak, Medium or Strong.

With no argument the password is read from the first line of standard input,
which keeps it out of shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd, args)
			if err != nil {
				return err
			}

			report := crypto.Analyze(password)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Strength:   %s\n", report.Verdict)
			fmt.Fprintf(out, "Length:     %d\n", report.Length)
			fmt.Fprintf(out, "Categories: %d\n", report.Categories)
			fmt.Fprintf(out, "Entropy:    %.1f bits\n", report.Entropy)
			return nil
		},
	}
}

// passwordArg returns args[0], or the first line of stdin without its line ending.
func passwordArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
