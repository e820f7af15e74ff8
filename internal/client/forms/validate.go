// Package forms validates form input before it reaches the network and
// drives the per-form submission state machine.
package forms

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// FieldErrors maps a form field (its JSON name) to the message shown next to
// it. Only the first failing rule of a field is reported.
type FieldErrors map[string]string

// Fields returns the failing field names in a stable order.
func (fe FieldErrors) Fields() []string {
	names := make([]string, 0, len(fe))
	for k := range fe {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// messages holds the user-facing text per field and rule.
var messages = map[string]map[string]string{
	"email": {
		"required": "Email address is required",
		"email":    "Email Address is invalid",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be more than 8 characters",
		"max":      "Password must be less than 32 characters",
	},
	"name": {
		"required": "Full name is required",
		"max":      "Name must be less than 100 characters",
	},
	"passwordConfirm": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}

// Validator runs the login and register schemas. It is safe for concurrent
// use.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

func (v *Validator) Login(in models.LoginInput) FieldErrors {
	return v.check(in)
}

// Register validates every field; a confirmation that differs from the
// password is reported on passwordConfirm, never on password.
func (v *Validator) Register(in models.RegisterInput) FieldErrors {
	return v.check(in)
}

func (v *Validator) check(in any) FieldErrors {
	err := v.v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return fe.Error()
}

var std = NewValidator()

// ValidateLogin checks a login form with the shared validator.
func ValidateLogin(in models.LoginInput) FieldErrors { return std.Login(in) }

// ValidateRegister checks a register form with the shared validator.
func ValidateRegister(in models.RegisterInput) FieldErrors { return std.Register(in) }
