package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name string
		in   models.LoginInput
		want FieldErrors
	}{
		{
			name: "valid",
			in:   models.LoginInput{Email: "a@b.com", Password: "password1"},
			want: nil,
		},
		{
			name: "short password",
			in:   models.LoginInput{Email: "a@b.com", Password: "short"},
			want: FieldErrors{"password": "Password must be more than 8 characters"},
		},
		{
			name: "long password",
			in:   models.LoginInput{Email: "a@b.com", Password: strings.Repeat("x", 33)},
			want: FieldErrors{"password": "Password must be less than 32 characters"},
		},
		{
			name: "boundaries accepted",
			in:   models.LoginInput{Email: "a@b.com", Password: strings.Repeat("x", 32)},
			want: nil,
		},
		{
			name: "empty fields",
			in:   models.LoginInput{},
			want: FieldErrors{
				"email":    "Email address is required",
				"password": "Password is required",
			},
		},
		{
			name: "bad email",
			in:   models.LoginInput{Email: "not-an-email", Password: "password1"},
			want: FieldErrors{"email": "Email Address is invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateLogin(tt.in))
		})
	}
}

func TestValidateRegister(t *testing.T) {
	valid := models.RegisterInput{
		Name:            "Ann Example",
		Email:           "ann@example.com",
		Password:        "password1",
		PasswordConfirm: "password1",
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateRegister(valid))
	})

	t.Run("mismatch lands on confirmation", func(t *testing.T) {
		in := valid
		in.PasswordConfirm = "password2"

		errs := ValidateRegister(in)
		assert.Equal(t, FieldErrors{"passwordConfirm": "Passwords do not match"}, errs)
		assert.NotContains(t, errs, "password")
	})

	t.Run("missing confirmation", func(t *testing.T) {
		in := valid
		in.PasswordConfirm = ""
		assert.Equal(t, "Please confirm your password", ValidateRegister(in)["passwordConfirm"])
	})

	t.Run("name limits", func(t *testing.T) {
		in := valid
		in.Name = ""
		assert.Equal(t, "Full name is required", ValidateRegister(in)["name"])

		in.Name = strings.Repeat("n", 101)
		assert.Equal(t, "Name must be less than 100 characters", ValidateRegister(in)["name"])

		in.Name = strings.Repeat("n", 100)
		assert.Nil(t, ValidateRegister(in))
	})
}

func TestFieldErrors_Fields(t *testing.T) {
	fe := FieldErrors{"password": "x", "email": "y"}
	assert.Equal(t, []string{"email", "password"}, fe.Fields())
}
