package httpapi

import (
	"time"

	"github.com/dmitrijs2005/wandergenie/internal/server/itineraries"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type planRequest struct {
	Destination string  `json:"destination" binding:"required"`
	Days        int     `json:"days" binding:"required,gte=1,lte=30"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	TravelStyle string  `json:"travel_style" binding:"required,oneof=adventure relaxation cultural luxury budget family"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type recordResponse struct {
	ID          string                `json:"id"`
	Destination string                `json:"destination"`
	TotalDays   int                   `json:"total_days"`
	TotalBudget float64               `json:"total_budget"`
	TravelStyle string                `json:"travel_style"`
	CreatedAt   string                `json:"created_at"`
	Itinerary   itineraries.Itinerary `json:"itinerary"`
}

type historyResponse struct {
	Count       int              `json:"count"`
	Itineraries []recordResponse `json:"itineraries"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt.Format(time.RFC3339)}
}

func toRecordResponse(r itineraries.Record) recordResponse {
	return recordResponse{
		ID:          r.ID,
		Destination: r.Itinerary.Destination,
		TotalDays:   r.Itinerary.TotalDays,
		TotalBudget: r.Itinerary.TotalBudget,
		TravelStyle: r.Itinerary.TravelStyle,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		Itinerary:   r.Itinerary,
	}
}
