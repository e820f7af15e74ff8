package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/forms"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// Login prompts for credentials and submits the login form. A remembered
// email is offered as the default; answering the "Remember me" question
// updates it once the login succeeds.
func (a *App) Login(ctx context.Context) error {
	remembered, err := a.remember.Email(ctx)
	if err != nil {
		a.logger.Warn(ctx, "read remembered email", "error", err)
	}

	prompt := "Email Address"
	if remembered != "" {
		prompt += fmt.Sprintf(" [%s]", remembered)
	}
	email, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = remembered
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	rememberMe, err := getConfirm(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	form := forms.NewForm[models.LoginInput](forms.ValidateLogin)
	form.Values = models.LoginInput{Email: email, Password: string(password)}

	switch form.Submit(ctx, a.session.Login) {
	case forms.StateInvalid:
		printFieldErrors(form.Errors)
	case forms.StateSuccess:
		if err := a.remember.Save(ctx, email, rememberMe); err != nil {
			a.logger.Warn(ctx, "save remembered email", "error", err)
		}
	}

	a.follow(ctx)
	return nil
}

// Register prompts for the sign-up fields and submits the register form.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email Address", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	confirm, err := getPassword("Confirm Password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	form := forms.NewForm[models.RegisterInput](forms.ValidateRegister)
	form.Values = models.RegisterInput{
		Name:            name,
		Email:           email,
		Password:        string(password),
		PasswordConfirm: string(confirm),
	}

	if form.Submit(ctx, a.session.Register) == forms.StateInvalid {
		printFieldErrors(form.Errors)
	}

	a.follow(ctx)
	return nil
}

// OAuth prints the sign-in link for provider. The flow finishes in the
// browser; the link carries the profile screen as its return target.
func (a *App) OAuth(ctx context.Context, provider string) error {
	if provider == "" {
		configured := a.links.Configured()
		if len(configured) == 0 {
			printlnFn("No OAuth providers configured")
			return nil
		}
		printlnFn("Usage: oauth <" + strings.Join(configured, "|") + ">")
		return nil
	}

	link, err := a.links.URL(provider, string(services.RouteProfile))
	if err != nil {
		return err
	}
	printlnFn("Open this link in your browser to continue:")
	printlnFn(link)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	a.router.Navigate(services.RouteProfile)
	a.follow(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.follow(ctx)
	return nil
}

// Forget clears the locally stored preferences, including a remembered
// email. The session is left as it is.
func (a *App) Forget(ctx context.Context) error {
	if err := a.remember.Forget(ctx); err != nil {
		return err
	}
	printlnFn("Local preferences cleared")
	return nil
}

func printFieldErrors(errs forms.FieldErrors) {
	for _, field := range errs.Fields() {
		printlnFn(fmt.Sprintf("  %s: %s", field, errs[field]))
	}
}
