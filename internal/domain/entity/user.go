// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A User may carry several linked
// Accounts (one per auth provider) and any number of Roles.
type User struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	PasswordHash    string     `json:"-"` // set only for local-password accounts
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	Disabled        bool       `json:"disabled"`

	// Roles is the hydrated role set including each role's permissions.
	// It is populated only when the caller asked for access hydration.
	Roles []*Role `json:"roles,omitempty"`

	// RoleNames and PermissionNames are denormalized from Roles at resolution
	// time for the guard pipeline. They are never persisted on the user row.
	RoleNames       []string `json:"role_names,omitempty"`
	PermissionNames []string `json:"permission_names,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Verified reports whether the user's email address has been confirmed.
func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}

// Sanitized returns a shallow copy of the user with the password hash removed.
// Every identity that leaves the auth boundary goes through this.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""

	return &clone
}

// DenormalizeAccess recomputes RoleNames and PermissionNames from the
// hydrated Roles. The permission set is the union across all roles.
func (u *User) DenormalizeAccess() {
	u.RoleNames = u.RoleNames[:0]
	u.PermissionNames = u.PermissionNames[:0]

	seen := make(map[string]struct{})
	for _, role := range u.Roles {
		u.RoleNames = append(u.RoleNames, role.Name)
		for _, perm := range role.Permissions {
			if _, ok := seen[perm.Name]; ok {
				continue
			}
			seen[perm.Name] = struct{}{}
			u.PermissionNames = append(u.PermissionNames, perm.Name)
		}
	}
}
