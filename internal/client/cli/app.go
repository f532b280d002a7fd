package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/dmitrijs2005/wandergenie/internal/client/client"
	"github.com/dmitrijs2005/wandergenie/internal/client/config"
	"github.com/dmitrijs2005/wandergenie/internal/client/guard"
	"github.com/dmitrijs2005/wandergenie/internal/client/repositories/token"
	"github.com/dmitrijs2005/wandergenie/internal/client/router"
	"github.com/dmitrijs2005/wandergenie/internal/client/services"
	"github.com/dmitrijs2005/wandergenie/internal/client/session"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
)

type App struct {
	session *session.Store
	router  *router.Router
	planner services.PlannerService
	chat    services.ChatService
	health  services.HealthService
	log     logging.Logger

	in  *bufio.Reader
	out io.Writer

	// submitting is the in-flight flag of the auth and planner forms.
	submitting atomic.Bool

	// signedIn mirrors the last session state seen by sessionChanged;
	// loggingOut suppresses the session-ended notice for an explicit logout.
	signedIn    atomic.Bool
	loggingOut  atomic.Bool
	unsubscribe func()

	closeFn func() error
}

// Deps are the collaborators of an App.
type Deps struct {
	Session *session.Store
	Planner services.PlannerService
	Chat    services.ChatService
	Health  services.HealthService
	Log     logging.Logger
	In      io.Reader
	Out     io.Writer
}

// New assembles an App from ready-made collaborators.
func New(d Deps) *App {
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	if d.Chat == nil {
		d.Chat = services.NewChatService()
	}
	a := &App{
		session: d.Session,
		router:  router.New(guard.New(d.Session)),
		planner: d.Planner,
		chat:    d.Chat,
		health:  d.Health,
		log:     d.Log,
		in:      bufio.NewReader(d.In),
		out:     d.Out,
	}
	a.signedIn.Store(d.Session.IsAuthenticated())
	a.unsubscribe = d.Session.Subscribe(a.sessionChanged)
	return a
}

// NewApp opens the local database and connects the App to the backend
// described by cfg, reading stdin and writing stdout.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	tokens := token.NewSQLiteRepository(db)
	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, tokens, log)
	store := session.NewStore(api, tokens, log)

	app := New(Deps{
		Session: store,
		Planner: services.NewPlannerService(api, store, log),
		Health:  services.NewHealthService(api),
		Log:     log,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	app.closeFn = db.Close
	return app, nil
}

// Run starts the session bootstrap in the background and serves the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	go a.session.Bootstrap(ctx)

	a.println("Welcome to WanderGenie (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.in, a.out)
	return nil
}

func (a *App) close(ctx context.Context) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.log.Warn(ctx, "closing database failed", "error", err)
	}
}

// sessionChanged tells the user when a session ends without an explicit
// logout, e.g. after the backend rejected the token.
func (a *App) sessionChanged(st session.State) {
	was := a.signedIn.Swap(st.IsAuthenticated())
	if !was || st.IsAuthenticated() || a.loggingOut.Load() {
		return
	}
	a.log.Info(context.Background(), "session ended by the backend")
	a.println(sessionEndedNotice)
}

func (a *App) isLoggedIn() bool { return a.session.IsAuthenticated() }

// status is shown in the prompt.
func (a *App) status() string {
	if !a.session.BootstrapComplete() {
		return "loading"
	}
	if u := a.session.CurrentUser(); u != nil {
		return u.Email
	}
	return "guest"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
