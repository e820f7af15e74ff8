package models

// LoginInput is the login form payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=32"`
}

// RegisterInput is the registration form payload. PasswordConfirm travels to
// the API as well; the server re-checks it.
type RegisterInput struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=32"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}
