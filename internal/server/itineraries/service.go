package itineraries

import (
	"context"
	"fmt"
)

type Service struct {
	repo      Repository
	generator Generator
}

func NewService(repo Repository, generator Generator) *Service {
	return &Service{repo: repo, generator: generator}
}

// Plan generates an itinerary for req and saves it to userID's history.
func (s *Service) Plan(ctx context.Context, userID string, req Request) (*Record, error) {
	it, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating itinerary: %w", err)
	}

	rec, err := s.repo.Create(ctx, &Record{UserID: userID, Itinerary: *it})
	if err != nil {
		return nil, fmt.Errorf("saving itinerary: %w", err)
	}
	return rec, nil
}

// History lists userID's saved itineraries, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Record, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}
	return recs, nil
}
