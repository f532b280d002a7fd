// Package guard decides whether a view may be shown for the current session.
package guard

// Decision is the outcome of evaluating a route.
type Decision int

const (
	Loading Decision = iota
	RedirectToLogin
	RedirectToHome
	Render
)

const (
	LoginPath = "/login"
	HomePath  = "/home"
)

func (d Decision) String() string {
	switch d {
	case Loading:
		return "loading"
	case RedirectToLogin:
		return "redirect-login"
	case RedirectToHome:
		return "redirect-home"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Target is the path a redirect decision points to, "" otherwise.
func (d Decision) Target() string {
	switch d {
	case RedirectToLogin:
		return LoginPath
	case RedirectToHome:
		return HomePath
	default:
		return ""
	}
}

// Evaluate is the policy for protected routes. Until bootstrap completes the
// answer is Loading whatever the authentication state, so protected content
// is never shown on a stale session.
func Evaluate(bootstrapped, authenticated bool) Decision {
	switch {
	case !bootstrapped:
		return Loading
	case !authenticated:
		return RedirectToLogin
	default:
		return Render
	}
}

// EvaluatePublic is the policy for the landing, login and signup routes:
// they render for visitors and send a signed-in user to the home screen.
func EvaluatePublic(bootstrapped, authenticated bool) Decision {
	switch {
	case !bootstrapped:
		return Loading
	case authenticated:
		return RedirectToHome
	default:
		return Render
	}
}

// SessionState is what the guard reads on every evaluation.
type SessionState interface {
	BootstrapComplete() bool
	IsAuthenticated() bool
}

// Guard evaluates routes against a live session. It holds no state of its
// own.
type Guard struct {
	session SessionState
}

func New(session SessionState) *Guard {
	return &Guard{session: session}
}

func (g *Guard) Check(protected bool) Decision {
	bootstrapped := g.session.BootstrapComplete()
	authenticated := g.session.IsAuthenticated()
	if protected {
		return Evaluate(bootstrapped, authenticated)
	}
	return EvaluatePublic(bootstrapped, authenticated)
}
