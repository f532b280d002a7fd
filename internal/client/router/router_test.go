package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/wandergenie/internal/client/guard"
)

type stubSession struct{ bootstrapped, authenticated bool }

func (s *stubSession) BootstrapComplete() bool { return s.bootstrapped }
func (s *stubSession) IsAuthenticated() bool   { return s.authenticated }

func newRouter(st *stubSession) *Router {
	return New(guard.New(st))
}

func TestMatch_RouteTable(t *testing.T) {
	r := newRouter(&stubSession{})

	tests := []struct {
		path      string
		want      Name
		protected bool
	}{
		{"/", Landing, false},
		{"/login", Login, false},
		{"/signup", Signup, false},
		{"/home", Home, true},
		{"/planner", Planner, true},
		{"/itinerary", Itinerary, true},
		{"/trip/42", Trip, true},
		{"/chat", Chat, true},
		{"/nowhere", NotFound, true},
		{"/trip", NotFound, true},
		{"/trip/1/extra", NotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rt, _ := r.Match(tt.path)
			assert.Equal(t, tt.want, rt.Name)
			assert.Equal(t, tt.protected, rt.Protected)
		})
	}
}

func TestMatch_ExtractsParams(t *testing.T) {
	r := newRouter(&stubSession{})

	rt, params := r.Match("/trip/abc-123")
	require.Equal(t, Trip, rt.Name)
	assert.Equal(t, map[string]string{"id": "abc-123"}, params)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "/", Clean(""))
	assert.Equal(t, "/", Clean("/"))
	assert.Equal(t, "/home", Clean("home"))
	assert.Equal(t, "/home", Clean(" /home/ "))
	assert.Equal(t, "/trip/7", Clean("//trip//7?tab=map#top"))
}

func TestNavigate_BeforeBootstrapIsLoading(t *testing.T) {
	for _, auth := range []bool{false, true} {
		r := newRouter(&stubSession{authenticated: auth})
		for _, p := range []string{"/home", "/login", "/", "/missing"} {
			out := r.Navigate(p)
			assert.Equal(t, guard.Loading, out.Decision, p)
			assert.Equal(t, p, out.Location)
		}
	}
}

func TestNavigate_AnonymousRedirectsFromProtected(t *testing.T) {
	r := newRouter(&stubSession{bootstrapped: true})

	out := r.Navigate("/planner")
	assert.Equal(t, guard.RedirectToLogin, out.Decision)
	assert.Equal(t, "/login", out.Location)
	assert.True(t, out.Redirected())

	out = r.Navigate("/missing")
	assert.Equal(t, guard.RedirectToLogin, out.Decision)

	out = r.Navigate("/")
	assert.Equal(t, guard.Render, out.Decision)
	assert.Equal(t, Landing, out.Route.Name)
}

func TestNavigate_SignedInUser(t *testing.T) {
	r := newRouter(&stubSession{bootstrapped: true, authenticated: true})

	out := r.Navigate("/trip/9")
	assert.Equal(t, guard.Render, out.Decision)
	assert.Equal(t, "9", out.Params["id"])
	assert.Equal(t, "/trip/9", out.Location)

	out = r.Navigate("/login")
	assert.Equal(t, guard.RedirectToHome, out.Decision)
	assert.Equal(t, "/home", out.Location)

	out = r.Navigate("/signup")
	assert.Equal(t, guard.RedirectToHome, out.Decision)

	out = r.Navigate("/definitely-not-here")
	assert.Equal(t, guard.Render, out.Decision)
	assert.Equal(t, NotFound, out.Route.Name)
}

func TestNavigate_SessionLossForcesRedirect(t *testing.T) {
	st := &stubSession{bootstrapped: true, authenticated: true}
	r := newRouter(st)
	require.Equal(t, guard.Render, r.Navigate("/chat").Decision)

	st.authenticated = false
	assert.Equal(t, guard.RedirectToLogin, r.Navigate("/chat").Decision)
}

func TestTripPath(t *testing.T) {
	assert.Equal(t, "/trip/abc", TripPath("abc"))
}
