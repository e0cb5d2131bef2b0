package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

const (
	MaxLength = 128
	MaxCount  = 50
)

var (
	ErrLengthTooLong = fmt.Errorf("%w: password length must be at most %d", crypto.ErrInvalidConfiguration, MaxLength)
	ErrCountTooLarge = fmt.Errorf("%w: count must be at most %d", crypto.ErrInvalidConfiguration, MaxCount)
	ErrCountNegative = fmt.Errorf("%w: count must not be negative", crypto.ErrInvalidConfiguration)
)

// EventRecorder persists anonymized generation events.
type EventRecorder interface {
	Insert(ctx context.Context, event *model.PasswordEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	recorder EventRecorder
	strength *StrengthService
}

// NewGeneratorService creates a new GeneratorService. recorder may be nil.
func NewGeneratorService(recorder EventRecorder, strength *StrengthService) *GeneratorService {
	return &GeneratorService{recorder: recorder, strength: strength}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := OptionsFromRequest(req)
	if opts.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	count := req.Count
	switch {
	case count < 0:
		return model.GenerateResponse{}, ErrCountNegative
	case count == 0:
		count = 1
	case count > MaxCount:
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	resp := model.GenerateResponse{Passwords: make([]model.GeneratedPassword, 0, count)}
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}

		report := s.strength.Report(password)
		resp.Passwords = append(resp.Passwords, model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: report,
		})

		s.record(ctx, opts, len(password), report.Verdict)
	}

	return resp, nil
}

// record stores the event without the password. Storage failures never fail generation.
func (s *GeneratorService) record(ctx context.Context, opts crypto.GeneratorOptions, length int, verdict string) {
	if s.recorder == nil {
		return
	}

	event := &model.PasswordEvent{
		Length:    length,
		ClassMask: ClassMask(opts),
		Verdict:   verdict,
	}
	if err := s.recorder.Insert(ctx, event); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("recording password event failed", "error", err)
	}
}

// OptionsFromRequest applies request defaults: all classes on and length 12.
func OptionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	return opts
}

// ClassMask encodes the enabled classes of opts as model.Class* bits.
func ClassMask(opts crypto.GeneratorOptions) uint8 {
	var mask uint8
	if opts.Lowercase {
		mask |= model.ClassLowercase
	}
	if opts.Uppercase {
		mask |= model.ClassUppercase
	}
	if opts.Digits {
		mask |= model.ClassDigits
	}
	if opts.Symbols {
		mask |= model.ClassSymbols
	}
	return mask
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
