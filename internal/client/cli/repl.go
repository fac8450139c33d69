package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context, token string) error
	List(ctx context.Context, filter string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	ClearCompleted(ctx context.Context) error
	Counts(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the taskquest CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Task commands are gated on the session: when the user is not signed in
// they are redirected to login/register instead (the route-guard behavior of
// the web UI).
//
// Commands:
//
//	Not signed in:
//	  - help            — show available commands
//	  - register        — create an account
//	  - login           — authenticate
//	  - verify <token>  — confirm an email address
//	  - exit | quit     — leave the program
//
//	Signed in (or offline mode):
//	  - (l)ist [all|active|completed]  — show tasks
//	  - add             — add a task (interactive prompts)
//	  - edit <id>       — update fields of a task
//	  - toggle <id>     — flip completion
//	  - rm <id>         — delete a task
//	  - clear           — delete all completed tasks
//	  - counts          — show total/pending/completed
//	  - logout          — sign out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	guard := func() bool {
		if a.isLoggedIn() {
			return true
		}
		printlnFn("Please sign in first ('login' or 'register').")
		return false
	}

	for {
		printlnFn(fmt.Sprintf("tq %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [all|active|completed], add, edit <id>, toggle <id>, rm <id>, clear, counts, logout, exit")
			} else {
				printlnFn("Available commands: register, login, verify <token>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <token>")
				continue
			}
			_ = a.VerifyEmail(ctx, args[0])

		case "l", "list":
			if !guard() {
				continue
			}
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			_ = a.List(ctx, filter)

		case "add":
			if !guard() {
				continue
			}
			_ = a.Add(ctx)

		case "edit":
			if !guard() {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "toggle":
			if !guard() {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: toggle <id>")
				continue
			}
			_ = a.Toggle(ctx, args[0])

		case "rm":
			if !guard() {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: rm <id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "clear":
			if !guard() {
				continue
			}
			_ = a.ClearCompleted(ctx)

		case "counts":
			if !guard() {
				continue
			}
			_ = a.Counts(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
