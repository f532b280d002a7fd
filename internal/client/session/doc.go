// Package session owns the authenticated-user state of a running client.
//
// A Store is constructed once and shared by the router, the services and the
// CLI. Bootstrap restores a session from the persisted token exactly once;
// Login, Register, Logout and Invalidate change it afterwards. Readers
// (IsAuthenticated, CurrentUser, BootstrapComplete) always see a consistent
// snapshot, and Subscribe lets a view re-evaluate its route guard after each
// change.
//
// Failed operations return a *Failure tagged with a Kind so callers can pick
// a message without inspecting transport details.
package session
