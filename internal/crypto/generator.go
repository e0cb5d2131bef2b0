package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Character pools in canonical order. Generate seeds from them in this order
// and Analyze recognises the same symbol set.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>/?"

	DefaultLength = 12
)

var (
	// ErrInvalidConfiguration is wrapped by every option validation error.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	ErrLengthTooShort   = fmt.Errorf("%w: password length must be at least 1", ErrInvalidConfiguration)
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be enabled", ErrInvalidConfiguration)
)

// randReader is the entropy source for every draw. Tests swap it to exercise
// read failures.
var randReader io.Reader = rand.Reader

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultOptions returns 12 characters with all four classes enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// ActivePools returns the pools enabled by opts, in canonical order.
func (o GeneratorOptions) ActivePools() []string {
	pools := make([]string, 0, 4)
	if o.Lowercase {
		pools = append(pools, lowercaseChars)
	}
	if o.Uppercase {
		pools = append(pools, uppercaseChars)
	}
	if o.Digits {
		pools = append(pools, digitChars)
	}
	if o.Symbols {
		pools = append(pools, symbolChars)
	}
	return pools
}

// Validate reports whether opts can produce a password.
func (o GeneratorOptions) Validate() error {
	if o.Length < 1 {
		return ErrLengthTooShort
	}
	if !o.Lowercase && !o.Uppercase && !o.Digits && !o.Symbols {
		return ErrNoCharacterTypes
	}
	return nil
}

// Generate creates a cryptographically secure random password based on the given options.
//
// The result always holds at least one character of every enabled class. One
// character per active pool is drawn before the length is considered, so a
// request shorter than the number of enabled classes yields a password with
// one character per class rather than a truncated one.
func Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	pools := opts.ActivePools()

	var alphabet string
	for _, p := range pools {
		alphabet += p
	}

	result := make([]byte, 0, max(opts.Length, len(pools)))

	// Guarantee at least one character from each selected type.
	for _, pool := range pools {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < opts.Length {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(randReader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(randReader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("reading random source: %w", err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
