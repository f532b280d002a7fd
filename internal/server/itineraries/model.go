package itineraries

import "time"

// Request is a trip planning request as accepted by /plan.
type Request struct {
	Destination string
	Days        int
	Budget      float64
	TravelStyle string
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

type Itinerary struct {
	Destination string      `json:"destination"`
	TotalDays   int         `json:"total_days"`
	TotalBudget float64     `json:"total_budget"`
	TravelStyle string      `json:"travel_style"`
	Days        []DayPlan   `json:"days"`
	Transport   []Transport `json:"transport"`
	Tips        []string    `json:"tips"`
}

// Record is a saved itinerary owned by one user.
type Record struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	Itinerary Itinerary
}
