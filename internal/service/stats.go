package service

import (
	"context"
	"errors"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var ErrStatsUnavailable = errors.New("stats storage is not configured")

// EventCounter aggregates stored generation events.
type EventCounter interface {
	CountByVerdict(ctx context.Context, since *time.Time) (map[string]int64, error)
}

// StatsService reports aggregate generation statistics.
type StatsService struct {
	counter EventCounter
}

// NewStatsService creates a new StatsService. counter may be nil.
func NewStatsService(counter EventCounter) *StatsService {
	return &StatsService{counter: counter}
}

// Summary returns the number of generated passwords per verdict.
func (s *StatsService) Summary(ctx context.Context, since *time.Time) (model.StatsResponse, error) {
	if s.counter == nil {
		return model.StatsResponse{}, ErrStatsUnavailable
	}

	counts, err := s.counter.CountByVerdict(ctx, since)
	if err != nil {
		return model.StatsResponse{}, err
	}

	resp := model.StatsResponse{
		ByVerdict: map[string]int64{
			string(crypto.Weak):   0,
			string(crypto.Medium): 0,
			string(crypto.Strong): 0,
		},
		Since: since,
	}
	for verdict, n := range counts {
		resp.ByVerdict[verdict] = n
		resp.Total += n
	}

	return resp, nil
}
