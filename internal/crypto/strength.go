package crypto

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Verdict is the three-level strength classification of a password.
type Verdict string

const (
	Weak   Verdict = "Weak"
	Medium Verdict = "Medium"
	Strong Verdict = "Strong"
)

const (
	weakEntropyBelow   = 40
	mediumEntropyBelow = 60
	minStrongLength    = 8
)

// StrengthReport holds the intermediate values behind a Verdict.
type StrengthReport struct {
	Length       int
	Categories   int
	AlphabetSize int
	Entropy      float64
	Verdict      Verdict
}

// Classify returns the strength verdict for password. Any string is accepted.
func Classify(password string) Verdict {
	return Analyze(password).Verdict
}

// Analyze estimates the entropy of password and classifies it.
//
// The alphabet estimate is categories*26 + 10 + 32. The digit and symbol terms
// are added whether or not those classes occur, so the figure is a coarse
// tiering score and not a measure of the real alphabet.
func Analyze(password string) StrengthReport {
	length := utf8.RuneCountInString(password)

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbolChars, r):
			hasSymbol = true
		}
	}

	categories := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			categories++
		}
	}

	alphabetSize := categories*26 + 10 + 32
	// length * log2(size) rather than log2(size^length), which overflows.
	entropy := float64(length) * math.Log2(float64(alphabetSize))

	return StrengthReport{
		Length:       length,
		Categories:   categories,
		AlphabetSize: alphabetSize,
		Entropy:      entropy,
		Verdict:      verdictFor(length, entropy),
	}
}

func verdictFor(length int, entropy float64) Verdict {
	switch {
	case entropy < weakEntropyBelow || length < minStrongLength:
		return Weak
	case entropy < mediumEntropyBelow:
		return Medium
	default:
		return Strong
	}
}
