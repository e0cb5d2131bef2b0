package crypto

import (
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantLen int
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantLen: DefaultLength,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Lowercase: true, Uppercase: true, Digits: true, Symbols: true,
			},
			wantLen: 32,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 16, Lowercase: true},
			wantLen: 16,
		},
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 16, Uppercase: true},
			wantLen: 16,
		},
		{
			name:    "digits only",
			opts:    GeneratorOptions{Length: 16, Digits: true},
			wantLen: 16,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 16, Symbols: true},
			wantLen: 16,
		},
		{
			name:    "length one",
			opts:    GeneratorOptions{Length: 1, Digits: true},
			wantLen: 1,
		},
		{
			name: "length equals class count",
			opts: GeneratorOptions{
				Length: 4, Lowercase: true, Uppercase: true, Digits: true, Symbols: true,
			},
			wantLen: 4,
		},
		{
			name: "length below class count keeps one per class",
			opts: GeneratorOptions{
				Length: 2, Lowercase: true, Uppercase: true, Digits: true, Symbols: true,
			},
			wantLen: 4,
		},
		{
			name:    "long password",
			opts:    GeneratorOptions{Length: 4096, Lowercase: true, Symbols: true},
			wantLen: 4096,
		},
		{
			name:    "zero length",
			opts:    GeneratorOptions{Length: 0, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "negative length",
			opts:    GeneratorOptions{Length: -5, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "no character types selected",
			opts:    GeneratorOptions{Length: 16},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("Generate() error = %v, want it to wrap ErrInvalidConfiguration", err)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.wantLen {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.wantLen)
			}
		})
	}
}

func TestGenerateContainsEveryActiveClass(t *testing.T) {
	opts := GeneratorOptions{Length: 8, Lowercase: true, Uppercase: true, Digits: true, Symbols: true}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 200; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		for _, pool := range opts.ActivePools() {
			if !strings.ContainsAny(password, pool) {
				t.Errorf("password %q missing a character from %q", password, pool)
			}
		}
	}
}

func TestGenerateStaysWithinActivePools(t *testing.T) {
	tests := []struct {
		name string
		opts GeneratorOptions
	}{
		{name: "lowercase only", opts: GeneratorOptions{Length: 64, Lowercase: true}},
		{name: "uppercase only", opts: GeneratorOptions{Length: 64, Uppercase: true}},
		{name: "digits only", opts: GeneratorOptions{Length: 64, Digits: true}},
		{name: "symbols only", opts: GeneratorOptions{Length: 64, Symbols: true}},
		{name: "lower and digits", opts: GeneratorOptions{Length: 64, Lowercase: true, Digits: true}},
		{name: "upper and symbols", opts: GeneratorOptions{Length: 64, Uppercase: true, Symbols: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charset := strings.Join(tt.opts.ActivePools(), "")

			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), charset)
				}
			}
		})
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateRandomSourceFailure(t *testing.T) {
	orig := randReader
	randReader = failingReader{}
	t.Cleanup(func() { randReader = orig })

	_, err := Generate(DefaultOptions())
	if err == nil {
		t.Fatal("Generate() expected error when the random source fails")
	}
	if errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Generate() error = %v, should not be a configuration error", err)
	}
}

func TestActivePoolsOrder(t *testing.T) {
	got := GeneratorOptions{Symbols: true, Digits: true, Uppercase: true, Lowercase: true}.ActivePools()
	want := []string{lowercaseChars, uppercaseChars, digitChars, symbolChars}

	if len(got) != len(want) {
		t.Fatalf("ActivePools() returned %d pools, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ActivePools()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
