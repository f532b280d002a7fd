package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wandergenie/internal/client/guard"
	"github.com/dmitrijs2005/wandergenie/internal/client/router"
)

// maxRedirects bounds a single navigation. A login/home ping-pong can only
// happen if the session flips between two evaluations.
const maxRedirects = 4

var errTooManyRedirects = errors.New("too many redirects")

// Open navigates to path: it waits while the session is loading, follows
// guard redirects and renders the resulting screen.
func (a *App) Open(ctx context.Context, path string) error {
	redirects := 0
	loadingShown := false

	for {
		out := a.router.Navigate(path)
		a.log.Debug(ctx, "navigate", "path", path, "decision", out.Decision.String())

		switch out.Decision {
		case guard.Loading:
			if !loadingShown {
				a.println("Loading...")
				loadingShown = true
			}
			select {
			case <-a.session.Ready():
			case <-ctx.Done():
				return ctx.Err()
			}

		case guard.RedirectToLogin, guard.RedirectToHome:
			redirects++
			if redirects > maxRedirects {
				a.println("Navigation aborted: too many redirects.")
				return errTooManyRedirects
			}
			a.printf("Redirecting to %s\n", out.Location)
			path = out.Location

		case guard.Render:
			return a.render(ctx, out)

		default:
			return fmt.Errorf("unexpected decision %v", out.Decision)
		}
	}
}

func (a *App) render(ctx context.Context, out router.Outcome) error {
	switch out.Route.Name {
	case router.Landing:
		a.landingScreen()
		return nil
	case router.Login:
		return a.loginScreen(ctx)
	case router.Signup:
		return a.signupScreen(ctx)
	case router.Home:
		return a.homeScreen(ctx)
	case router.Planner:
		return a.plannerScreen(ctx)
	case router.Itinerary:
		a.itineraryScreen()
		return nil
	case router.Trip:
		return a.tripScreen(ctx, out.Params["id"])
	case router.Chat:
		return a.chatScreen(ctx)
	default:
		a.notFoundScreen(out.Location)
		return nil
	}
}

func (a *App) landingScreen() {
	a.println("WanderGenie: AI-powered trip planning.")
	a.println("Tell us where, how long and your budget; get a day-by-day itinerary.")
	a.println("Type 'login' to sign in or 'signup' to create an account.")
}

func (a *App) notFoundScreen(path string) {
	a.printf("404: nothing at %s. Type 'home' to go back.\n", path)
}
