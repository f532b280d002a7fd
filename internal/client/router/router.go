// Package router maps client paths to screens and gates every navigation
// through the route guard.
package router

import (
	"strings"

	"github.com/dmitrijs2005/wandergenie/internal/client/guard"
)

type Name string

const (
	Landing   Name = "landing"
	Login     Name = "login"
	Signup    Name = "signup"
	Home      Name = "home"
	Planner   Name = "planner"
	Itinerary Name = "itinerary"
	Trip      Name = "trip"
	Chat      Name = "chat"
	NotFound  Name = "not-found"
)

type Route struct {
	Name      Name
	Pattern   string
	Protected bool
}

// DefaultRoutes is the route table of the client. Order matters only for
// documentation; patterns do not overlap.
var DefaultRoutes = []Route{
	{Name: Landing, Pattern: "/"},
	{Name: Login, Pattern: "/login"},
	{Name: Signup, Pattern: "/signup"},
	{Name: Home, Pattern: "/home", Protected: true},
	{Name: Planner, Pattern: "/planner", Protected: true},
	{Name: Itinerary, Pattern: "/itinerary", Protected: true},
	{Name: Trip, Pattern: "/trip/:id", Protected: true},
	{Name: Chat, Pattern: "/chat", Protected: true},
}

// catchAll takes every unmatched path. It is gated like any protected route,
// so an anonymous visitor is sent to login before learning a page is missing.
var catchAll = Route{Name: NotFound, Pattern: "*", Protected: true}

// Checker is satisfied by *guard.Guard.
type Checker interface {
	Check(protected bool) guard.Decision
}

// Outcome describes the result of a navigation. Location is the path to
// show: the requested one when rendering or loading, the redirect target
// otherwise.
type Outcome struct {
	Decision guard.Decision
	Route    Route
	Params   map[string]string
	Location string
}

func (o Outcome) Redirected() bool { return o.Decision.Target() != "" }

type Router struct {
	guard  Checker
	routes []Route
}

func New(g Checker) *Router {
	return &Router{guard: g, routes: DefaultRoutes}
}

// Navigate resolves path and evaluates the guard for it. The guard is
// consulted on every call; the router keeps no session state.
func (r *Router) Navigate(path string) Outcome {
	path = Clean(path)
	route, params := r.Match(path)

	d := r.guard.Check(route.Protected)
	out := Outcome{Decision: d, Route: route, Params: params, Location: path}
	if t := d.Target(); t != "" {
		out.Location = t
	}
	return out
}

// Match finds the route for an already cleaned path, falling back to the
// protected catch-all.
func (r *Router) Match(path string) (Route, map[string]string) {
	segs := split(path)
	for _, rt := range r.routes {
		if params, ok := match(split(rt.Pattern), segs); ok {
			return rt, params
		}
	}
	return catchAll, map[string]string{}
}

func match(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	params := map[string]string{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if segs[i] == "" {
				return nil, false
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Clean normalizes user input into a route path: a leading slash, no
// trailing slash, no query or fragment.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = "/" + strings.Trim(path, "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}

// TripPath builds the details path of a saved trip.
func TripPath(id string) string { return "/trip/" + id }
