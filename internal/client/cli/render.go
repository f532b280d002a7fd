package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/client/services"
	"github.com/dmitrijs2005/wandergenie/internal/client/session"
)

const sessionEndedNotice = "Your session has expired. Please log in again."

// describe turns an error into the message shown to the user.
func describe(err error) string {
	switch session.KindOf(err) {
	case session.KindValidation:
		if d := client.Detail(err); d != "" {
			return d
		}
		return validationMessage(err)
	case session.KindConflict:
		return "An account with this email already exists."
	case session.KindInvalidCredentials:
		return "Incorrect email or password."
	case session.KindUnauthorized:
		return sessionEndedNotice
	case session.KindNetwork:
		return "Cannot reach the WanderGenie server. Please try again later."
	case session.KindStorage:
		return fmt.Sprintf("Local storage error: %v", err)
	}
	if errors.Is(err, services.ErrEmptyMessage) {
		return "Type a message first."
	}
	if d := client.Detail(err); d != "" {
		return d
	}
	return fmt.Sprintf("Something went wrong: %v", err)
}

// validationMessage strips the "invalid input: " marker.
func validationMessage(err error) string {
	msg := err.Error()
	marker := models.ErrInvalidInput.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		msg = msg[i+len(marker):]
	}
	if msg == "" {
		return "Invalid input."
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

func (a *App) printTrips(records []models.ItineraryRecord) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESTINATION\tDAYS\tBUDGET\tSTYLE\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t$%.0f\t%s\t%s\n",
			r.ID, r.Destination, r.TotalDays, r.TotalBudget, r.TravelStyle, r.CreatedAt)
	}
	_ = tw.Flush()
}

func (a *App) printItinerary(it *models.Itinerary) {
	a.printf("== %s: %d days, $%.0f (%s) ==\n", it.Destination, it.TotalDays, it.TotalBudget, it.TravelStyle)

	for _, d := range it.Days {
		a.printf("\nDay %d: %s\n", d.Day, d.Title)
		a.printActivities("Morning", d.Morning)
		a.printActivities("Afternoon", d.Afternoon)
		a.printActivities("Evening", d.Evening)
		if d.Accommodation != "" {
			a.printf("  Stay: %s\n", d.Accommodation)
		}
		a.printf("  Daily budget: $%.0f\n", d.DailyBudget)
	}

	if len(it.Transport) > 0 {
		a.println("\nTransport")
		for _, t := range it.Transport {
			a.printf("  - %s: %s ($%.0f)\n", t.Type, t.Details, t.EstimatedCost)
		}
	}
	if len(it.Tips) > 0 {
		a.println("\nTips")
		for _, tip := range it.Tips {
			a.printf("  - %s\n", tip)
		}
	}
}

func (a *App) printActivities(part string, acts []models.Activity) {
	if len(acts) == 0 {
		return
	}
	a.printf("  %s\n", part)
	for _, act := range acts {
		a.printf("    - %s (%s, $%.0f): %s\n", act.Name, act.Duration, act.EstimatedCost, act.Description)
	}
}
