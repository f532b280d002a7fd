package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/client/router"
	"github.com/dmitrijs2005/wandergenie/internal/client/session"
	"github.com/dmitrijs2005/wandergenie/internal/common"
)

const (
	defaultBudget      = 2000
	defaultBudgetLevel = "medium"
)

func (a *App) homeScreen(ctx context.Context) error {
	a.printf("Welcome, %s!\n", displayName(a.session.CurrentUser()))

	records, err := a.planner.History(ctx)
	if err != nil {
		return a.callFailed(ctx, err, "/home")
	}
	if len(records) == 0 {
		a.println("You have no trips yet. Ready to start your adventure? Type 'plan'.")
		return nil
	}

	a.println("Your Travel Adventures")
	a.printTrips(records)
	a.println("Type 'trip <id>' to see one in detail, or 'plan' for a new one.")
	return nil
}

func (a *App) plannerScreen(ctx context.Context) error {
	a.println("Start Your Journey")

	destination, err := getSimpleText(a.in, "Destination (e.g. Tokyo, Japan)", a.out)
	if err != nil {
		return err
	}
	daysText, err := getSimpleText(a.in, "Number of days (1-30)", a.out)
	if err != nil {
		return err
	}
	budgetText, err := getSimpleText(a.in, "Budget in USD [2000]", a.out)
	if err != nil {
		return err
	}
	styleText, err := getSimpleText(a.in, "Travel style: budget, medium or luxury [medium]", a.out)
	if err != nil {
		return err
	}

	req, err := planRequest(destination, daysText, budgetText, styleText)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		a.println(describe(err))
		return err
	}

	a.println("Generating your itinerary...")
	err = a.submit(func() error {
		_, err := a.planner.Plan(ctx, req)
		return err
	})
	if errors.Is(err, errBusy) {
		return err
	}
	if err != nil {
		return a.callFailed(ctx, err, "/planner")
	}
	return a.Open(ctx, "/itinerary")
}

// planRequest turns raw form input into a request. A blank budget means the
// default; the style may be a budget level or one of the travel styles.
func planRequest(destination, daysText, budgetText, styleText string) (models.PlanRequest, error) {
	req := models.PlanRequest{Destination: strings.TrimSpace(destination)}

	days, err := strconv.Atoi(strings.TrimSpace(daysText))
	if err != nil {
		return req, wrapInvalid("days must be a whole number")
	}
	req.Days = days

	req.Budget = defaultBudget
	if b := strings.TrimSpace(budgetText); b != "" {
		req.Budget, err = strconv.ParseFloat(strings.TrimPrefix(b, "$"), 64)
		if err != nil {
			return req, wrapInvalid("budget must be a number")
		}
	}

	style := strings.ToLower(strings.TrimSpace(styleText))
	if style == "" {
		style = defaultBudgetLevel
	}
	if models.IsTravelStyle(style) {
		req.TravelStyle = style
	} else {
		req.TravelStyle = models.StyleForBudgetLevel(style)
	}
	return req, nil
}

func wrapInvalid(msg string) error {
	return fmt.Errorf("%w: %s", models.ErrInvalidInput, msg)
}

func (a *App) itineraryScreen() {
	it := a.planner.Last()
	if it == nil {
		a.println("No itinerary to show yet. Type 'plan' to create one.")
		return
	}
	a.printItinerary(it)
	a.println("Type 'chat' to tweak it with the AI assistant.")
}

func (a *App) tripScreen(ctx context.Context, id string) error {
	rec, err := a.planner.Trip(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		a.println("Trip Not Found")
		a.println("We couldn't find the trip details. Type 'plan' to create a new one.")
		return err
	}
	if err != nil {
		return a.callFailed(ctx, err, router.TripPath(id))
	}

	a.printf("Saved %s\n", rec.CreatedAt)
	a.printItinerary(&rec.Itinerary)
	a.println("Type 'chat' to ask the AI assistant about this trip.")
	return nil
}

func (a *App) chatScreen(ctx context.Context) error {
	a.println("AI Travel Assistant (empty line to leave)")
	a.printf("assistant> %s\n", a.chat.Greeting().Text)

	for {
		a.printf("you> ")
		line, err := readLine(a.in)
		if err != nil {
			a.println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}

		msg, err := a.chat.Reply(ctx, line)
		if err != nil {
			a.println(describe(err))
			if ctx.Err() != nil {
				return err
			}
			continue
		}
		a.printf("assistant> %s\n", msg.Text)
	}
}

// callFailed reports a failed backend call. A rejected session has already
// been announced by sessionChanged; the screen at path is reopened, which now
// redirects to login.
func (a *App) callFailed(ctx context.Context, err error, path string) error {
	if session.KindOf(err) != session.KindUnauthorized {
		a.println(describe(err))
		return err
	}
	_ = a.Open(ctx, path)
	return err
}
