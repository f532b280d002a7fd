package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrInvalidInput is wrapped by every form validation error.
var ErrInvalidInput = errors.New("invalid input")

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MinTripDays       = 1
	MaxTripDays       = 30
	MinTripBudget     = 100
)

// Travel styles accepted by the planner.
const (
	StyleAdventure  = "adventure"
	StyleRelaxation = "relaxation"
	StyleCultural   = "cultural"
	StyleLuxury     = "luxury"
	StyleBudget     = "budget"
	StyleFamily     = "family"
)

var TravelStyles = []string{
	StyleAdventure, StyleRelaxation, StyleCultural, StyleLuxury, StyleBudget, StyleFamily,
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ValidateEmail accepts a bare address such as "ann@example.com".
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return invalid("invalid email address")
	}
	return nil
}

func (c Credentials) Validate() error {
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if len(c.Password) < MinPasswordLength {
		return invalid("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// Validate checks the signup form. confirm is the repeated password, which
// is never sent to the backend.
func (r Registration) Validate(confirm string) error {
	if len(strings.TrimSpace(r.Name)) < MinNameLength {
		return invalid("name must be at least %d characters", MinNameLength)
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < MinPasswordLength {
		return invalid("password must be at least %d characters", MinPasswordLength)
	}
	if r.Password != confirm {
		return invalid("passwords don't match")
	}
	return nil
}

func (p PlanRequest) Validate() error {
	if strings.TrimSpace(p.Destination) == "" {
		return invalid("destination is required")
	}
	if p.Days < MinTripDays || p.Days > MaxTripDays {
		return invalid("days must be between %d and %d", MinTripDays, MaxTripDays)
	}
	if p.Budget < MinTripBudget {
		return invalid("minimum budget is $%d", MinTripBudget)
	}
	if !IsTravelStyle(p.TravelStyle) {
		return invalid("unknown travel style %q", p.TravelStyle)
	}
	return nil
}

func IsTravelStyle(s string) bool {
	for _, v := range TravelStyles {
		if v == s {
			return true
		}
	}
	return false
}

// StyleForBudgetLevel maps the planner form's budget level to a travel style.
func StyleForBudgetLevel(level string) string {
	switch level {
	case "budget":
		return StyleBudget
	case "medium":
		return StyleRelaxation
	case "luxury":
		return StyleLuxury
	default:
		return StyleCultural
	}
}
