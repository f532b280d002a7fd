package itineraries

import (
	"context"
	"fmt"
)

// Generator produces an itinerary for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Itinerary, error)
}

// PlaceholderGenerator returns a fixed-shape itinerary with the budget split
// evenly across days. It stands in for the real planner in development.
type PlaceholderGenerator struct{}

func (PlaceholderGenerator) Generate(ctx context.Context, req Request) (*Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", req.Days)
	}

	daily := req.Budget / float64(req.Days)

	days := make([]DayPlan, req.Days)
	for i := range days {
		days[i] = DayPlan{
			Day:   i + 1,
			Title: fmt.Sprintf("Day %d in %s", i+1, req.Destination),
			Morning: []Activity{{
				Name: "Explore local area", Description: "Information not available in context", Duration: "3 hours",
			}},
			Afternoon: []Activity{{
				Name: "Continue exploring", Description: "Information not available in context", Duration: "3 hours",
			}},
			Evening: []Activity{{
				Name: "Dinner and relaxation", Description: "Information not available in context", Duration: "2 hours",
				EstimatedCost: daily * 0.3,
			}},
			Accommodation: "Budget-appropriate accommodation",
			DailyBudget:   daily,
		}
	}

	return &Itinerary{
		Destination: req.Destination,
		TotalDays:   req.Days,
		TotalBudget: req.Budget,
		TravelStyle: req.TravelStyle,
		Days:        days,
		Transport: []Transport{{
			Type: "Local transport", Details: "Information not available in context", EstimatedCost: req.Budget * 0.1,
		}},
		Tips: []string{"Plan ahead", "Check weather", "Book accommodations early"},
	}, nil
}
