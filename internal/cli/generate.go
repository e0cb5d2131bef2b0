package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
)

type generateFlags struct {
	length       int
	count        int
	noLower      bool
	noUpper      bool
	noDigits     bool
	noSymbols    bool
	showStrength bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.length, "length", "l", crypto.DefaultLength, "password length")
	flags.IntVarP(&f.count, "count", "c", 1, "number of passwords to generate")
	flags.BoolVar(&f.noLower, "no-lower", false, "exclude lowercase letters")
	flags.BoolVar(&f.noUpper, "no-upper", false, "exclude uppercase letters")
	flags.BoolVar(&f.noDigits, "no-digits", false, "exclude digits")
	flags.BoolVar(&f.noSymbols, "no-symbols", false, "exclude symbols")
	flags.BoolVarP(&f.showStrength, "show-strength", "s", false, "print the strength verdict next to each password")

	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	if f.count < 1 {
		return errors.New("count must be at least 1")
	}

	opts := crypto.GeneratorOptions{
		Length:    f.length,
		Lowercase: !f.noLower,
		Uppercase: !f.noUpper,
		Digits:    !f.noDigits,
		Symbols:   !f.noSymbols,
	}

	out := cmd.OutOrStdout()
	for i := 0; i < f.count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			if errors.Is(err, crypto.ErrInvalidConfiguration) {
				return err
			}
			return fmt.Errorf("generating password: %w", err)
		}

		if f.showStrength {
			fmt.Fprintf(out, "%s\t%s\n", password, crypto.Classify(password))
			continue
		}
		fmt.Fprintln(out, password)
	}

	return nil
}
