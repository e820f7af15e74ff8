package client

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, in models.LoginInput) error
	Register(ctx context.Context, in models.RegisterInput) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Close() error
}
