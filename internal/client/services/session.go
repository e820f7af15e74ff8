// Package services contains the client's application services. This file
// defines the session controller: it owns the authenticated user, issues
// every credentialed API call and turns failures into notifications and
// redirects.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/forms"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// RegisteredMessage is shown after a successful sign-up.
const RegisteredMessage = "Account created successfully"

// SessionService defines the session operations used by the front end.
//
// Contract:
//   - Login / Register: validate locally, then call the API. Invalid input
//     yields field errors and no request.
//   - FetchCurrentUser: load the profile into the session.
//   - Logout: end the session; the local user is always cleared.
//   - User / Loading: read the current session state.
//
// No method returns transport or API errors; failures surface as
// notifications. Results report whether the operation succeeded.
type SessionService interface {
	Login(ctx context.Context, in models.LoginInput) forms.Result
	Register(ctx context.Context, in models.RegisterInput) forms.Result
	FetchCurrentUser(ctx context.Context) forms.Result
	Logout(ctx context.Context) forms.Result
	User() *models.User
	Loading() bool
}

// Controller is the concrete SessionService. One Controller is created per
// process and injected wherever the session is needed.
type Controller struct {
	client    client.Client
	notifier  Notifier
	navigator Navigator
	tracker   *Tracker
	validator *forms.Validator
	logger    logging.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewController(c client.Client, n Notifier, nav Navigator, tracker *Tracker, logger logging.Logger) *Controller {
	if tracker == nil {
		tracker = NewTracker(nil)
	}
	return &Controller{
		client:    c,
		notifier:  n,
		navigator: nav,
		tracker:   tracker,
		validator: forms.NewValidator(),
		logger:    logger.With("component", "session"),
	}
}

// User returns a copy of the authenticated user, or nil when logged out.
func (c *Controller) User() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Controller) Loading() bool { return c.tracker.Active() }

// Reset forgets the authenticated user without calling the API.
func (c *Controller) Reset() { c.setUser(nil) }

func (c *Controller) setUser(u *models.User) {
	c.mu.Lock()
	c.user = u
	c.mu.Unlock()
}

// Login sends the credentials and opens the profile on success.
func (c *Controller) Login(ctx context.Context, in models.LoginInput) forms.Result {
	if errs := c.validator.Login(in); len(errs) > 0 {
		return forms.Result{Errors: errs}
	}

	err := c.track(ctx, "login", func() error { return c.client.Login(ctx, in) })
	if err != nil {
		c.reportFailure(err)
		return forms.Result{}
	}

	c.navigator.Navigate(RouteProfile)
	return forms.Result{OK: true}
}

// Register creates the account and sends the user to the login screen.
func (c *Controller) Register(ctx context.Context, in models.RegisterInput) forms.Result {
	if errs := c.validator.Register(in); len(errs) > 0 {
		return forms.Result{Errors: errs}
	}

	err := c.track(ctx, "register", func() error { return c.client.Register(ctx, in) })
	if err != nil {
		c.reportFailure(err)
		return forms.Result{}
	}

	c.notify(LevelSuccess, RegisteredMessage)
	c.navigator.Navigate(RouteLogin)
	return forms.Result{OK: true}
}

// FetchCurrentUser loads the profile into the session. A lost session clears
// the user and redirects to login as well as notifying.
func (c *Controller) FetchCurrentUser(ctx context.Context) forms.Result {
	var user *models.User
	err := c.track(ctx, "fetch current user", func() error {
		var err error
		user, err = c.client.CurrentUser(ctx)
		return err
	})
	if err != nil {
		if c.reportStructured(err) {
			return forms.Result{}
		}
		if IsSessionLoss(err) {
			c.setUser(nil)
			c.navigator.Navigate(RouteLogin)
		}
		c.notify(LevelError, ResolveMessage(err))
		return forms.Result{}
	}

	c.setUser(user)
	return forms.Result{OK: true}
}

// Logout ends the session. The local user is cleared and the login screen
// opened whatever the API answers; a failed call is still reported.
func (c *Controller) Logout(ctx context.Context) forms.Result {
	err := c.track(ctx, "logout", func() error { return c.client.Logout(ctx) })

	c.setUser(nil)
	c.navigator.Navigate(RouteLogin)

	if err != nil {
		c.reportFailure(err)
		return forms.Result{}
	}
	return forms.Result{OK: true}
}

// track runs call with the loading indicator raised. The indicator is
// lowered before track returns on every path, including a panic in call.
func (c *Controller) track(ctx context.Context, op string, call func() error) error {
	done := c.tracker.Begin()
	defer done()

	c.logger.Debug(ctx, "operation started", "op", op)
	err := call()
	done()

	if err != nil {
		c.logger.Warn(ctx, "operation failed", "op", op, "error", err)
	} else {
		c.logger.Debug(ctx, "operation settled", "op", op)
	}
	return err
}

// reportFailure emits one notification per structured entry, or a single
// resolved message otherwise.
func (c *Controller) reportFailure(err error) {
	if c.reportStructured(err) {
		return
	}
	c.notify(LevelError, ResolveMessage(err))
}

func (c *Controller) reportStructured(err error) bool {
	apiErr, ok := asAPIError(err)
	if !ok || !apiErr.Structured() {
		return false
	}
	for _, fe := range apiErr.Body.Errors {
		c.notify(LevelError, fe.Message)
	}
	return true
}

func (c *Controller) notify(level Level, msg string) {
	c.notifier.Notify(Notification{Level: level, Message: msg})
}
