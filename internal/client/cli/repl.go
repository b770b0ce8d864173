package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/visionai/console/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	revalidate(ctx context.Context)
	Open(ctx context.Context, path string) error
	Refresh(ctx context.Context) error
	Where(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Expand(ctx context.Context, id string) error
	Analyze(ctx context.Context) error
	AddUser(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	RegisterModel(ctx context.Context) error
}

// runREPL runs the console's read–eval–print loop.
//
// Before every prompt the current page is re-resolved if the session changed
// since it was drawn (revalidate). The prompt shows statusFn(). The first
// token of each line is the command:
//
//	help                 show available commands
//	open <path>          navigate to a path, e.g. open /drift
//	home, models, ...    shortcuts for every page (see router.Routes)
//	login | logout       start or end the session
//	whoami | where       session and location details
//	refresh              reload the current page
//	expand <model id>    toggle feature statistics (models page)
//	analyze              run drift analysis (drift page)
//	adduser | passwd     user management (users page)
//	register             register a model (model metadata page)
//	exit | quit          leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them inline themselves. The loop exits on EOF, exit or quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		a.revalidate(ctx)

		printFn(prompt(statusFn()))
		line, ok := readCommand(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn()))

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "where":
			_ = a.Where(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "expand":
			var id string
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Expand(ctx, id)

		case "analyze":
			_ = a.Analyze(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "register":
			_ = a.RegisterModel(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if r, ok := router.ByCommand(cmd); ok {
				_ = a.Open(ctx, r.Path)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}

func prompt(status string) string {
	if status == "" {
		return "vision> "
	}
	return "vision " + status + "> "
}

func helpText(loggedIn bool) string {
	if !loggedIn {
		return "Available commands: login, open <path>, where, exit"
	}

	pages := make([]string, 0, len(router.Routes()))
	for _, r := range router.Routes() {
		pages = append(pages, r.Command)
	}
	return "Pages: " + strings.Join(pages, ", ") + "\n" +
		"Available commands: open <path>, refresh, where, whoami, logout, exit\n" +
		"Page actions: expand <model id>, analyze, adduser, passwd, register"
}
