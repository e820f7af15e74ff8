// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the local preferences store, the HTTP API client
// and the session controller, then runs a REPL on stdin. Guests can register,
// log in with a password or print an OAuth sign-in link; logged-in users can
// view their profile and log out.
//
// Screens follow the controller's navigation: after every command the REPL
// opens each requested screen in order, up to four per command (a profile
// that finds the session gone leads on to the login screen). Notifications
// from the controller are printed as "[level] message" lines, and a
// "Loading..." line appears whenever a request starts while none was running.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router, Toaster and runREPL for details.
package cli
