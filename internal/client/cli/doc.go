// Package cli provides the interactive WanderGenie terminal client.
//
// The App wires configuration, the local token database, the API client,
// the session store and the router, then runs a REPL. Session bootstrap
// starts in the background as soon as the App runs; every screen is opened
// through the router, so protected screens wait ("Loading...") until the
// bootstrap has finished and then either render or redirect to login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
