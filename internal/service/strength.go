package service

import (
	"context"
	"errors"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

const (
	MaxCheckLength = 1024

	// zxcvbn matching is superlinear, so only a prefix is scored.
	advisoryRuneLimit = 128
)

var ErrPasswordTooLong = errors.New("password must be at most 1024 bytes")

// StrengthService classifies arbitrary passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Check classifies the password in req. The empty password is valid input.
func (s *StrengthService) Check(_ context.Context, req model.StrengthRequest) (model.StrengthResponse, error) {
	if len(req.Password) > MaxCheckLength {
		return model.StrengthResponse{}, ErrPasswordTooLong
	}
	return model.StrengthResponse{StrengthReport: s.Report(req.Password)}, nil
}

// Report builds the API strength report. The verdict comes from crypto.Analyze;
// the zxcvbn score is only advisory.
func (s *StrengthService) Report(password string) model.StrengthReport {
	analysis := crypto.Analyze(password)

	report := model.StrengthReport{
		Verdict:      string(analysis.Verdict),
		Length:       analysis.Length,
		Categories:   analysis.Categories,
		AlphabetSize: analysis.AlphabetSize,
		Entropy:      analysis.Entropy,
	}

	if password == "" {
		return report
	}

	advisory := zxcvbn.PasswordStrength(truncateRunes(password, advisoryRuneLimit), nil)
	report.Score = advisory.Score
	report.CrackTime = advisory.CrackTimeDisplay

	return report
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
