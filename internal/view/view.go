// Package view decides which top-level screen the client shows for a given
// session snapshot. Role and auth state fully determine the screen; there is
// no other routing state.
package view

import (
	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
)

type View int

const (
	Loading View = iota
	Landing
	StudentDashboard
	RecruiterDashboard
	AdminDashboard
)

func (v View) String() string {
	switch v {
	case Loading:
		return "loading"
	case Landing:
		return "landing"
	case StudentDashboard:
		return "student"
	case RecruiterDashboard:
		return "recruiter"
	case AdminDashboard:
		return "admin"
	default:
		return "unknown"
	}
}

// Resolve maps a session to a view. Unrecognized roles fall back to the
// landing screen rather than failing.
func Resolve(s session.Session) View {
	if s.Loading {
		return Loading
	}
	if s.User == nil {
		return Landing
	}
	switch s.User.Role {
	case models.RoleStudent:
		return StudentDashboard
	case models.RoleRecruiter:
		return RecruiterDashboard
	case models.RoleAdmin:
		return AdminDashboard
	default:
		return Landing
	}
}
