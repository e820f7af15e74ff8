package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const (
	guestHelp = "Available commands: register, login, oauth [google|github], forget, exit"
	userHelp  = "Available commands: profile, logout, forget, exit"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	OAuth(ctx context.Context, provider string) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the gophauth CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when the context is
// done, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                    show available commands
//	  - register                create an account
//	  - login                   authenticate with email and password
//	  - oauth [google|github]   print a provider sign-in link
//	  - forget                  clear the remembered email
//	  - exit | quit             leave the program
//
//	Logged in:
//	  - help                    show available commands
//	  - profile                 show the current user
//	  - logout                  end the session
//	  - forget                  clear the remembered email
//	  - exit | quit             leave the program
//
// Errors returned by command handlers are printed and the loop continues;
// API failures never reach here because the session controller reports
// them as notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gophauth %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "register", "login", "oauth":
			if a.isLoggedIn() {
				printlnFn("Already logged in; use logout first")
				continue
			}
			switch cmd {
			case "register":
				cmdErr = a.Register(ctx)
			case "login":
				cmdErr = a.Login(ctx)
			default:
				provider := ""
				if len(args) > 0 {
					provider = args[0]
				}
				cmdErr = a.OAuth(ctx, provider)
			}

		case "profile", "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in. " + guestHelp)
				continue
			}
			if cmd == "profile" {
				cmdErr = a.Profile(ctx)
			} else {
				cmdErr = a.Logout(ctx)
			}

		case "forget":
			cmdErr = a.Forget(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
