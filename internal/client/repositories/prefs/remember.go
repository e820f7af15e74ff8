package prefs

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

const (
	KeyRememberMe = "remember_me"
	KeyLastEmail  = "last_email"
)

// Remembered backs the "Remember me" box of the login screen. Only the email
// address is kept.
type Remembered struct {
	db   *sql.DB
	repo Repository
}

func NewRemembered(db *sql.DB) *Remembered {
	return &Remembered{db: db, repo: NewSQLiteRepository(db)}
}

// Save stores email when remember is set and forgets it otherwise. Both keys
// change in one transaction.
func (r *Remembered) Save(ctx context.Context, email string, remember bool) error {
	email = strings.TrimSpace(email)
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var repo Repository = NewSQLiteRepository(tx)
		if !remember || email == "" {
			if err := repo.Delete(ctx, KeyLastEmail); err != nil {
				return err
			}
			return repo.Delete(ctx, KeyRememberMe)
		}
		if err := repo.Set(ctx, KeyLastEmail, []byte(email)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyRememberMe, []byte("1"))
	})
}

// Email returns the remembered address, or "" when nothing is remembered.
func (r *Remembered) Email(ctx context.Context) (string, error) {
	flag, err := r.repo.Get(ctx, KeyRememberMe)
	if err != nil || flag == nil {
		return "", err
	}
	v, err := r.repo.Get(ctx, KeyLastEmail)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Forget drops every stored preference.
func (r *Remembered) Forget(ctx context.Context) error {
	return r.repo.Clear(ctx)
}
