package auth

import "github.com/angelmondragon/sellerdash/internal/subscriptions"

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the authenticated seller account.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	StoreID  int64  `json:"store_id,omitempty"`
	Verified bool   `json:"verified"`
}

// Session is the login result. Subscription is nil when the seller has none
// or it could not be loaded.
type Session struct {
	User         User                        `json:"user"`
	Token        string                      `json:"token,omitempty"`
	Subscription *subscriptions.Subscription `json:"subscription"`
}

type loginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
