package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/models"
)

func TestOpen_ProtectedRouteWaitsForBootstrapThenRedirects(t *testing.T) {
	// The stored token is rejected, so after loading the visitor lands on login.
	h := newHarness(t, &fakeBackend{verifyErr: client.ErrUnauthorized}, "stale", "")
	h.out.marker = "Loading..."
	h.out.fn = func() { go h.store.Bootstrap(context.Background()) }

	err := h.app.Open(context.Background(), "/home")
	require.Error(t, err, "login form hits EOF")

	out := h.out.String()
	loading := strings.Index(out, "Loading...")
	redirect := strings.Index(out, "Redirecting to /login")
	require.GreaterOrEqual(t, loading, 0)
	require.Greater(t, redirect, loading)
	assert.Contains(t, out, "Member's Login")
	assert.NotContains(t, out, "Your Travel Adventures")
	assert.NotContains(t, out, "Welcome,")
	assert.Empty(t, h.tokens.stored())
}

func TestOpen_RestoredSessionRendersHome(t *testing.T) {
	backend := &fakeBackend{verifyUser: &testUser}
	h := newHarness(t, backend, "good", "")
	h.out.marker = "Loading..."
	h.out.fn = func() { go h.store.Bootstrap(context.Background()) }

	require.NoError(t, h.app.Open(context.Background(), "/home"))

	out := h.out.String()
	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, "Welcome, Ann!")
	assert.Contains(t, out, "You have no trips yet")
	assert.NotContains(t, out, "Redirecting")
}

func TestOpen_PublicRouteRedirectsSignedInUserHome(t *testing.T) {
	h := newHarness(t, &fakeBackend{verifyUser: &testUser}, "good", "").bootstrapped()

	require.NoError(t, h.app.Open(context.Background(), "/login"))
	assert.Contains(t, h.out.String(), "Redirecting to /home")
	assert.NotContains(t, h.out.String(), "Member's Login")
}

func TestOpen_UnknownPathIsProtected(t *testing.T) {
	h := newHarness(t, &fakeBackend{verifyUser: &testUser}, "good", "").bootstrapped()
	require.NoError(t, h.app.Open(context.Background(), "/nowhere"))
	assert.Contains(t, h.out.String(), "404: nothing at /nowhere")

	h = newHarness(t, &fakeBackend{}, "", "").bootstrapped()
	require.Error(t, h.app.Open(context.Background(), "/nowhere"))
	assert.Contains(t, h.out.String(), "Redirecting to /login")
	assert.NotContains(t, h.out.String(), "404")
}

func TestOpen_CancelledWhileLoading(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, "", "")
	ctx, cancel := context.WithCancel(context.Background())
	h.out.marker = "Loading..."
	h.out.fn = cancel

	err := h.app.Open(ctx, "/home")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoginScreen_Success(t *testing.T) {
	backend := &fakeBackend{
		loginToken: &models.Token{AccessToken: "fresh", TokenType: "bearer", User: testUser},
		history: []models.ItineraryRecord{{
			ID: "it-1", Destination: "Lisbon, Portugal", TotalDays: 4, TotalBudget: 1500,
			TravelStyle: "cultural", CreatedAt: "2026-10-02T09:00:00",
		}},
	}
	h := newHarness(t, backend, "", " ann@example.com \n").bootstrapped()
	stubPasswords(t, "secret1")

	require.NoError(t, h.app.Open(context.Background(), "/login"))

	require.Equal(t, []models.Credentials{{Email: "ann@example.com", Password: "secret1"}}, backend.logins)
	assert.Equal(t, "fresh", h.tokens.stored())
	out := h.out.String()
	assert.Contains(t, out, "Welcome back, Ann!")
	assert.Contains(t, out, "Your Travel Adventures")
	assert.Contains(t, out, "Lisbon, Portugal")
	assert.Contains(t, out, "it-1")
}

func TestLoginScreen_ShowsServerDetail(t *testing.T) {
	backend := &fakeBackend{loginErr: &client.APIError{
		StatusCode: 401, Detail: "Incorrect email or password", Err: client.ErrInvalidCredentials,
	}}
	h := newHarness(t, backend, "", "ann@example.com\n").bootstrapped()
	stubPasswords(t, "wrongpw")

	require.Error(t, h.app.Open(context.Background(), "/login"))
	assert.Contains(t, h.out.String(), "Incorrect email or password")
	assert.False(t, h.store.IsAuthenticated())
	assert.Empty(t, h.tokens.stored())
}

func TestLoginScreen_ValidatesBeforeCalling(t *testing.T) {
	backend := &fakeBackend{}
	h := newHarness(t, backend, "", "not-an-email\n").bootstrapped()
	stubPasswords(t, "secret1")

	require.Error(t, h.app.Open(context.Background(), "/login"))
	assert.Empty(t, backend.logins)
	assert.Contains(t, h.out.String(), "Invalid email")
}

func TestLoginScreen_NetworkFailure(t *testing.T) {
	backend := &fakeBackend{loginErr: client.ErrUnavailable}
	h := newHarness(t, backend, "", "ann@example.com\n").bootstrapped()
	stubPasswords(t, "secret1")

	require.Error(t, h.app.Open(context.Background(), "/login"))
	assert.Contains(t, h.out.String(), "Cannot reach the WanderGenie server")
}

func TestSignupScreen_PasswordMismatch(t *testing.T) {
	backend := &fakeBackend{}
	h := newHarness(t, backend, "", "Ann\nann@example.com\n").bootstrapped()
	stubPasswords(t, "secret1", "secret2")

	require.Error(t, h.app.Open(context.Background(), "/signup"))
	assert.Contains(t, h.out.String(), "Passwords don't match.")
	assert.Empty(t, backend.logins)
}

func TestSignupScreen_RegistersAndLogsIn(t *testing.T) {
	backend := &fakeBackend{
		registerUser: &testUser,
		loginToken:   &models.Token{AccessToken: "fresh", User: testUser},
	}
	h := newHarness(t, backend, "", "Ann\nann@example.com\n").bootstrapped()
	stubPasswords(t, "secret1", "secret1")

	require.NoError(t, h.app.Open(context.Background(), "/signup"))
	assert.Contains(t, h.out.String(), "Account created. Welcome, Ann!")
	assert.Equal(t, "fresh", h.tokens.stored())
	require.Len(t, backend.logins, 1)
}

func TestSignupScreen_DuplicateEmail(t *testing.T) {
	backend := &fakeBackend{registerErr: &client.APIError{
		StatusCode: 400, Detail: "Email already registered", Err: client.ErrConflict,
	}}
	h := newHarness(t, backend, "", "Ann\nann@example.com\n").bootstrapped()
	stubPasswords(t, "secret1", "secret1")

	require.Error(t, h.app.Open(context.Background(), "/signup"))
	assert.Contains(t, h.out.String(), "Email already registered")
	assert.False(t, h.store.IsAuthenticated())
}

func TestSubmit_RejectsWhileInFlight(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, "", "")
	h.app.submitting.Store(true)

	called := false
	err := h.app.submit(func() error { called = true; return nil })
	require.ErrorIs(t, err, errBusy)
	assert.False(t, called)
	assert.Contains(t, h.out.String(), "Please wait")
}

func TestLogout_ClearsSessionAndShowsLanding(t *testing.T) {
	h := newHarness(t, &fakeBackend{verifyUser: &testUser}, "good", "").bootstrapped()

	require.NoError(t, h.app.Logout(context.Background()))
	assert.False(t, h.store.IsAuthenticated())
	assert.Empty(t, h.tokens.stored())
	assert.Contains(t, h.out.String(), "Logged out.")
	assert.Contains(t, h.out.String(), "WanderGenie: AI-powered trip planning.")
}

func TestWhoami(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testUser.ID,
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	h := newHarness(t, &fakeBackend{verifyUser: &testUser}, tok, "").bootstrapped()
	require.NoError(t, h.app.Whoami(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Ann <ann@example.com>")
	assert.Contains(t, out, "User ID: u-1")
	assert.Contains(t, out, "Token: valid until")

	h = newHarness(t, &fakeBackend{}, "", "").bootstrapped()
	require.NoError(t, h.app.Whoami(context.Background()))
	assert.Contains(t, h.out.String(), "Not logged in.")
}
