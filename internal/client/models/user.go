// Package models defines the data shapes exchanged with the blogging
// platform API.
package models

// Role is an account role as reported by the backend.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAuthor Role = "AUTHOR"
	RoleUser   Role = "USER"
)

// User is the authenticated principal's profile. It is immutable once
// fetched; a fresh login or /me call replaces it wholesale.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the user's role set contains r.
func (u *User) HasRole(r Role) bool {
	if u == nil {
		return false
	}
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}
