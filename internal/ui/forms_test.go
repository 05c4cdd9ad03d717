package ui

import (
	"reflect"
	"testing"

	"github.com/RohitArisankala/Joblens/internal/models"
)

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{
			name: "missing required field",
			in:   models.LoginRequest{Password: "x"},
			want: "email is required",
		},
		{
			name: "malformed email",
			in:   models.LoginRequest{Email: "not-an-email", Password: "x"},
			want: "email must be a valid email address",
		},
		{
			name: "role outside the allowed set",
			in:   models.RegisterRequest{Name: "A", Email: "a@b.com", Password: "x", Role: "admin"},
			want: "role must be one of: student recruiter",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if err.Error() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	req := models.RegisterRequest{Name: "A", Email: "a@b.com", Password: "x", Role: models.RoleStudent}
	if err := Validate(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"Python", []string{"Python"}},
		{" Python , SQL ,, React ", []string{"Python", "SQL", "React"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitList(%q): expected %v, got %v", tt.raw, tt.want, got)
		}
	}
}
