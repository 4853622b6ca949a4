package models

import (
	"strings"
	"time"
)

// Role distinguishes the two kinds of marketplace accounts.
type Role string

const (
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleProvider
}

// Account is a persisted user or provider. It only exists after the owner
// confirmed their email.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Role         Role      `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	IsBlocked    bool      `bson:"isBlocked" json:"isBlocked"`
	IsApproved   bool      `bson:"isApproved,omitempty" json:"isApproved,omitempty"` // providers only
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicProvider is the provider view shown to users.
type PublicProvider struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public strips credential and moderation fields.
func (a Account) Public() PublicProvider {
	return PublicProvider{
		ID:         a.ID,
		Name:       a.Name,
		IsApproved: a.IsApproved,
		CreatedAt:  a.CreatedAt,
	}
}

// NormalizeEmail is the canonical form used for lookups and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
