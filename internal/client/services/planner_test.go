package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/common"
)

type fakePlannerAPI struct {
	planRet  *models.Itinerary
	planErr  error
	planReqs []models.PlanRequest

	history    *models.ItineraryHistory
	historyErr error
}

func (f *fakePlannerAPI) Plan(_ context.Context, req models.PlanRequest) (*models.Itinerary, error) {
	f.planReqs = append(f.planReqs, req)
	return f.planRet, f.planErr
}

func (f *fakePlannerAPI) Itineraries(context.Context) (*models.ItineraryHistory, error) {
	return f.history, f.historyErr
}

type fakeInvalidator struct{ causes []error }

func (f *fakeInvalidator) Invalidate(_ context.Context, cause error) {
	f.causes = append(f.causes, cause)
}

var tokyo = models.PlanRequest{Destination: "Tokyo, Japan", Days: 3, Budget: 2000, TravelStyle: models.StyleCultural}

func unauthorized() error {
	return &client.APIError{StatusCode: 401, Detail: "Could not validate credentials", Err: client.ErrUnauthorized}
}

func TestPlanner_PlanValidatesBeforeCalling(t *testing.T) {
	api := &fakePlannerAPI{}
	svc := NewPlannerService(api, &fakeInvalidator{}, nil)

	bad := tokyo
	bad.Days = 31
	_, err := svc.Plan(context.Background(), bad)

	require.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Empty(t, api.planReqs)
}

func TestPlanner_PlanRemembersLast(t *testing.T) {
	api := &fakePlannerAPI{planRet: &models.Itinerary{Destination: "Tokyo, Japan", TotalDays: 3}}
	svc := NewPlannerService(api, &fakeInvalidator{}, nil)
	assert.Nil(t, svc.Last())

	it, err := svc.Plan(context.Background(), tokyo)
	require.NoError(t, err)

	assert.Equal(t, "Tokyo, Japan", it.Destination)
	assert.Same(t, it, svc.Last())
	assert.Equal(t, []models.PlanRequest{tokyo}, api.planReqs)
}

func TestPlanner_UnauthorizedInvalidatesSession(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewPlannerService(&fakePlannerAPI{planErr: unauthorized(), historyErr: unauthorized()}, inv, nil)

	_, err := svc.Plan(context.Background(), tokyo)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = svc.History(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)

	assert.Len(t, inv.causes, 2)
}

func TestPlanner_OtherFailuresKeepSession(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewPlannerService(&fakePlannerAPI{
		planErr: &client.APIError{StatusCode: 500, Err: client.ErrUnavailable},
	}, inv, nil)

	_, err := svc.Plan(context.Background(), tokyo)
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Empty(t, inv.causes)
	assert.Nil(t, svc.Last())
}

func TestPlanner_HistoryAndTrip(t *testing.T) {
	api := &fakePlannerAPI{history: &models.ItineraryHistory{
		Count: 2,
		Itineraries: []models.ItineraryRecord{
			{ID: "b", Destination: "Lisbon"},
			{ID: "a", Destination: "Oslo"},
		},
	}}
	svc := NewPlannerService(api, &fakeInvalidator{}, nil)

	recs, err := svc.History(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Lisbon", recs[0].Destination)

	trip, err := svc.Trip(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Oslo", trip.Destination)

	_, err = svc.Trip(context.Background(), "zzz")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestPlanner_TripPropagatesHistoryError(t *testing.T) {
	svc := NewPlannerService(&fakePlannerAPI{historyErr: fmt.Errorf("%w: refused", client.ErrUnavailable)}, &fakeInvalidator{}, nil)

	_, err := svc.Trip(context.Background(), "a")
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.False(t, errors.Is(err, common.ErrNotFound))
}

func TestChat(t *testing.T) {
	svc := NewChatService()

	assert.Equal(t, ChatGreeting, svc.Greeting().Text)
	assert.False(t, svc.Greeting().FromUser)

	msg, err := svc.Reply(context.Background(), "Add a museum on day 2")
	require.NoError(t, err)
	assert.Equal(t, ChatMockReply, msg.Text)

	_, err = svc.Reply(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Reply(ctx, "hi")
	require.ErrorIs(t, err, context.Canceled)
}

type fakeHealthAPI struct{ h *models.Health }

func (f fakeHealthAPI) Health(context.Context) (*models.Health, error) { return f.h, nil }

func TestHealth_Ping(t *testing.T) {
	svc := NewHealthService(fakeHealthAPI{h: &models.Health{Status: "healthy", Version: "1.0.0"}})
	h, err := svc.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
}
