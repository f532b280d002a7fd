package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/guard"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
	"github.com/dmitrijs2005/wandergenie/internal/client/session"
)

var errBusy = errors.New("a submission is already in progress")

// submit runs fn unless another form submission is still in flight. The REPL
// drives forms from a single goroutine, so the flag only trips when a form is
// submitted from elsewhere while one is running.
func (a *App) submit(fn func() error) error {
	if !a.submitting.CompareAndSwap(false, true) {
		a.println("Please wait, the previous request is still running.")
		return errBusy
	}
	defer a.submitting.Store(false)
	return fn()
}

func (a *App) loginScreen(ctx context.Context) error {
	a.println("Member's Login")

	email, err := getSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	creds := models.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		a.println(describe(err))
		return err
	}

	err = a.submit(func() error { return a.session.Login(ctx, creds) })
	if err != nil {
		if !errors.Is(err, errBusy) {
			a.println(describeAuth(err, "Login failed. Please check your credentials."))
		}
		return err
	}

	a.printf("Welcome back, %s!\n", displayName(a.session.CurrentUser()))
	return a.Open(ctx, guard.HomePath)
}

func (a *App) signupScreen(ctx context.Context) error {
	a.println("New Membership")

	name, err := getSimpleText(a.in, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	data := models.Registration{Email: email, Name: name, Password: password}
	if err := data.Validate(confirm); err != nil {
		a.println(describe(err))
		return err
	}

	err = a.submit(func() error { return a.session.Register(ctx, data) })
	if err != nil {
		if !errors.Is(err, errBusy) {
			a.println(describeAuth(err, "Registration failed. Please try again."))
		}
		return err
	}

	a.printf("Account created. Welcome, %s!\n", displayName(a.session.CurrentUser()))
	return a.Open(ctx, guard.HomePath)
}

// Logout ends the session and shows the landing page.
func (a *App) Logout(ctx context.Context) error {
	a.loggingOut.Store(true)
	a.session.Logout(ctx)
	a.loggingOut.Store(false)
	a.println("Logged out.")
	return a.Open(ctx, "/")
}

// Whoami prints the signed-in identity and the expiry of its token.
func (a *App) Whoami(ctx context.Context) error {
	if !a.session.BootstrapComplete() {
		a.println("Loading...")
		select {
		case <-a.session.Ready():
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	u := a.session.CurrentUser()
	if u == nil {
		a.println("Not logged in.")
		return nil
	}
	a.printf("%s <%s>\n", u.Name, u.Email)
	a.printf("User ID: %s\n", u.ID)
	if u.CreatedAt != "" {
		a.printf("Member since: %s\n", u.CreatedAt)
	}

	info, err := a.session.TokenInfo(ctx)
	if err != nil {
		a.println(describe(err))
		return err
	}
	switch {
	case info.ExpiresAt.IsZero():
		a.printf("Token: %s\n", info)
	case info.Expired(time.Now()):
		a.printf("Token: expired at %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	default:
		a.printf("Token: valid until %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
	}
	return nil
}

// Status reports whether the backend is reachable.
func (a *App) Status(ctx context.Context) error {
	if a.health == nil {
		return nil
	}
	h, err := a.health.Ping(ctx)
	if err != nil {
		a.println(describe(err))
		return err
	}
	a.printf("Server %s (version %s, database %s)\n", h.Status, h.Version, h.Database)
	return nil
}

func displayName(u *models.User) string {
	if u == nil {
		return "traveller"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// describeAuth prefers the server's detail for credential and account
// errors, falling back to fallback.
func describeAuth(err error, fallback string) string {
	switch session.KindOf(err) {
	case session.KindInvalidCredentials, session.KindConflict, session.KindValidation:
		if d := client.Detail(err); d != "" {
			return d
		}
		if session.KindOf(err) == session.KindInvalidCredentials {
			return fallback
		}
	}
	return describe(err)
}
