package session

import (
	"testing"

	"github.com/RohitArisankala/Joblens/internal/models"
)

func TestLoginSetsTokenAndUserTogether(t *testing.T) {
	s := Login("tok1", models.User{ID: "s1", Role: models.RoleStudent, Email: "a@b.com"})
	if !s.Authenticated() {
		t.Fatal("expected authenticated session after login")
	}
	if s.Token != "tok1" {
		t.Fatalf("expected token tok1, got %q", s.Token)
	}
	if s.User == nil || s.User.ID != "s1" || s.User.Role != models.RoleStudent || s.User.Email != "a@b.com" {
		t.Fatalf("unexpected user: %+v", s.User)
	}
	if s.Loading {
		t.Fatal("login must not produce a loading session")
	}
}

func TestLogoutClearsBoth(t *testing.T) {
	s := Logout()
	if s.Token != "" || s.User != nil {
		t.Fatalf("expected cleared session, got %+v", s)
	}
	if s.Authenticated() {
		t.Fatal("cleared session must not be authenticated")
	}
}

func TestAuthenticatedRequiresBoth(t *testing.T) {
	if (Session{Token: "t"}).Authenticated() {
		t.Fatal("token without user must not be authenticated")
	}
	if (Session{User: &models.User{ID: "u"}}).Authenticated() {
		t.Fatal("user without token must not be authenticated")
	}
}
