package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

// maxHops bounds how many chained navigations one command may cause, e.g.
// profile → login after a lost session.
const maxHops = 4

// follow opens every screen the controller navigated to since the last call.
func (a *App) follow(ctx context.Context) {
	for i := 0; i < maxHops; i++ {
		to, ok := a.router.Next()
		if !ok {
			return
		}
		a.open(ctx, to)
	}
}

func (a *App) open(ctx context.Context, to services.Route) {
	a.logger.Debug(ctx, "open screen", "route", to)

	switch to {
	case services.RouteHome:
		printlnFn("Welcome to gophauth. Log in or register to see your profile.")
	case services.RouteLogin:
		if !a.isLoggedIn() {
			printlnFn("Login to have access: 'login', or 'oauth google|github'. Need an account? 'register'")
		}
	case services.RouteRegister:
		printlnFn("Create an account with 'register'")
	case services.RouteProfile:
		a.showProfile(ctx)
	}
}

func (a *App) showProfile(ctx context.Context) {
	if !a.session.FetchCurrentUser(ctx).OK {
		return
	}
	u := a.session.User()
	if u == nil {
		return
	}

	printlnFn("Profile Page")
	printlnFn(fmt.Sprintf("  ID:       %s", u.ID))
	printlnFn(fmt.Sprintf("  Name:     %s", u.Name))
	printlnFn(fmt.Sprintf("  Email:    %s", u.Email))
	printlnFn(fmt.Sprintf("  Role:     %s", u.Role))
	printlnFn(fmt.Sprintf("  Provider: %s", u.Provider))
	if u.Photo != "" {
		printlnFn(fmt.Sprintf("  Photo:    %s", u.AvatarURL(a.config.ServerEndpoint)))
	}
}
