// Package models holds the client-side data shapes exchanged with the auth
// API and the form inputs collected from the user.
package models

import (
	"strings"
)

// User is the authenticated user as returned by GET /api/users/me.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Photo     string    `json:"photo"`
	Provider  string    `json:"provider"`
	Verified  bool      `json:"verified"`
	// Timestamps are kept as sent; their format is up to the API.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// defaultPhoto marks avatars served by the API itself rather than by the
// OAuth provider.
const defaultPhoto = "default.png"

// AvatarURL resolves the photo reference against the API base URL. The
// placeholder avatar lives under /api/images on the API; provider avatars are
// already absolute URLs.
func (u *User) AvatarURL(base string) string {
	if strings.Contains(u.Photo, defaultPhoto) {
		return strings.TrimRight(base, "/") + "/api/images/" + u.Photo
	}
	return u.Photo
}
