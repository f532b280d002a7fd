package client

import (
	"context"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
)

// Client is the remote contract of the WanderGenie backend.
type Client interface {
	Register(ctx context.Context, data models.Registration) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (*models.Token, error)
	// VerifyToken resolves token to its user (GET /auth/me).
	VerifyToken(ctx context.Context, token string) (*models.User, error)
	Plan(ctx context.Context, req models.PlanRequest) (*models.Itinerary, error)
	Itineraries(ctx context.Context) (*models.ItineraryHistory, error)
	Health(ctx context.Context) (*models.Health, error)
}

// TokenSource yields the stored access token, "" when there is none.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}
