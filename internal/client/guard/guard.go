// Package guard gates author-only views on session state. It is a pure
// decision function; acting on the decision (prompting for login, falling
// back to the public view) is the caller's job.
package guard

import "github.com/mbs-dev/blogctl/internal/client/models"

// Session is the read-only slice of session state the guard consumes.
// *session.Manager satisfies it.
type Session interface {
	Ready() bool
	IsAuthenticated() bool
	User() *models.User
}

type Decision int

const (
	// Wait: hydration has not finished; show a placeholder, take no action.
	Wait Decision = iota
	// RedirectLogin: visitor is not authenticated.
	RedirectLogin
	// RedirectPublic: authenticated but lacking the required role.
	RedirectPublic
	// Allow: render the protected content.
	Allow
)

func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect-login"
	case RedirectPublic:
		return "redirect-public"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Check evaluates the guard for a single required role.
func Check(s Session, required models.Role) Decision {
	if !s.Ready() {
		return Wait
	}
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	if !s.User().HasRole(required) {
		return RedirectPublic
	}
	return Allow
}
