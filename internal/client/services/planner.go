// Package services holds the data access used by the client screens:
// trip planning, itinerary history and the chat assistant.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/common"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
)

// PlannerAPI is the part of the backend the planner calls. Both calls are
// authenticated.
type PlannerAPI interface {
	Plan(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error)
	Itineraries(ctx context.Context) (*models.ItineraryHistory, error)
}

// Invalidator ends the session when the backend rejects its credentials.
type Invalidator interface {
	Invalidate(ctx context.Context, cause error)
}

// PlannerService plans trips and reads the itinerary history.
//
// Every call that comes back Unauthorized ends the session before the error
// is returned, so the next navigation lands on the login screen.
type PlannerService interface {
	Plan(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error)
	// Last is the most recently generated itinerary, nil if none.
	Last() *models.Itinerary
	History(ctx context.Context) ([]models.ItineraryRecord, error)
	// Trip returns one saved itinerary, common.ErrNotFound if absent.
	Trip(ctx context.Context, id string) (*models.ItineraryRecord, error)
}

type plannerService struct {
	api     PlannerAPI
	session Invalidator
	log     logging.Logger

	mu   sync.Mutex
	last *models.Itinerary
}

func NewPlannerService(api PlannerAPI, session Invalidator, log logging.Logger) PlannerService {
	if log == nil {
		log = logging.Nop()
	}
	return &plannerService{api: api, session: session, log: log.With("component", "planner")}
}

func (p *plannerService) Plan(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	it, err := p.api.Plan(ctx, req)
	if err != nil {
		return nil, p.fail(ctx, "plan trip", err)
	}

	p.mu.Lock()
	p.last = it
	p.mu.Unlock()

	p.log.Info(ctx, "itinerary generated", "destination", it.Destination, "days", len(it.Days))
	return it, nil
}

func (p *plannerService) Last() *models.Itinerary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *plannerService) History(ctx context.Context) ([]models.ItineraryRecord, error) {
	h, err := p.api.Itineraries(ctx)
	if err != nil {
		return nil, p.fail(ctx, "load itineraries", err)
	}
	return h.Itineraries, nil
}

func (p *plannerService) Trip(ctx context.Context, id string) (*models.ItineraryRecord, error) {
	records, err := p.History(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("trip %q: %w", id, common.ErrNotFound)
}

func (p *plannerService) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && p.session != nil {
		p.session.Invalidate(ctx, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
