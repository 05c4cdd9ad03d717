// Package session holds the client's view of "who is logged in". The
// session is an immutable value; Login and Logout are pure transitions and
// persistence is handled separately by Store. Callers thread the token
// explicitly into API calls instead of mutating a shared default header.
package session

import "github.com/RohitArisankala/Joblens/internal/models"

// Session is the current identity snapshot. Invariant: User is present iff
// Token is present. Loading is true only before the one-time restore.
type Session struct {
	Token   string
	User    *models.User
	Loading bool
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Login returns the authenticated session for a freshly issued token.
func Login(token string, user models.User) Session {
	return Session{Token: token, User: &user}
}

// Logout returns the cleared, non-loading session.
func Logout() Session {
	return Session{}
}
