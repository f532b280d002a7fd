package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/wandergenie/internal/client/router"
)

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Status(ctx context.Context) error
}

// screenCommands open a screen by path.
var screenCommands = map[string]string{
	"home":      "/home",
	"trips":     "/home",
	"login":     "/login",
	"signup":    "/signup",
	"register":  "/signup",
	"plan":      "/planner",
	"itinerary": "/itinerary",
	"chat":      "/chat",
}

const (
	helpGuest = "Available commands: login, signup, open <path>, status, help, exit"
	helpUser  = "Available commands: home, plan, itinerary, trips, trip <id>, chat, whoami, open <path>, status, logout, help, exit"
)

// runREPL reads commands line by line from in and dispatches them to a. The
// prompt shows statusFn(). Errors returned by handlers are not printed here;
// handlers report to the user themselves. The loop ends on EOF, "exit" or
// "quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "wg (%s)> ", statusFn())

		line, err := readLine(in)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if path, ok := screenCommands[cmd]; ok {
			_ = a.Open(ctx, path)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpUser)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "trip":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: trip <id>")
				continue
			}
			_ = a.Open(ctx, router.TripPath(args[0]))

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as is; io.EOF is reported only when nothing
// was read.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
