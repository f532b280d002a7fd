package models

// PlanRequest is the trip-preferences form submitted to the planner.
type PlanRequest struct {
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	TravelStyle string  `json:"travel_style"`
}

type Activity struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Duration      string  `json:"duration"`
	EstimatedCost float64 `json:"estimated_cost"`
}

type DayPlan struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Morning       []Activity `json:"morning"`
	Afternoon     []Activity `json:"afternoon"`
	Evening       []Activity `json:"evening"`
	Accommodation string     `json:"accommodation"`
	DailyBudget   float64    `json:"daily_budget"`
}

type Transport struct {
	Type          string  `json:"type"`
	Details       string  `json:"details"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Itinerary is a generated day-by-day trip plan.
type Itinerary struct {
	Destination string      `json:"destination"`
	TotalDays   int         `json:"total_days"`
	TotalBudget float64     `json:"total_budget"`
	TravelStyle string      `json:"travel_style"`
	Days        []DayPlan   `json:"days"`
	Transport   []Transport `json:"transport"`
	Tips        []string    `json:"tips"`
}

// ItineraryRecord is a saved itinerary from the user's history.
type ItineraryRecord struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	TotalDays   int       `json:"total_days"`
	TotalBudget float64   `json:"total_budget"`
	TravelStyle string    `json:"travel_style"`
	CreatedAt   string    `json:"created_at"`
	Itinerary   Itinerary `json:"itinerary"`
}

// ItineraryHistory lists saved itineraries, newest first.
type ItineraryHistory struct {
	Count       int               `json:"count"`
	Itineraries []ItineraryRecord `json:"itineraries"`
}

// Health is the backend liveness report.
type Health struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}
