package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

func TestBuildSearch(t *testing.T) {
	tests := []struct {
		name                  string
		college, year, skills string
		want                  models.StudentSearch
	}{
		{
			name: "all blank",
			want: models.StudentSearch{},
		},
		{
			name:    "college trimmed",
			college: "  MIT  ",
			want:    models.StudentSearch{College: "MIT"},
		},
		{
			name: "numeric year kept",
			year: "2026",
			want: models.StudentSearch{YearOfPassout: 2026},
		},
		{
			name: "non-numeric year dropped",
			year: "soon",
			want: models.StudentSearch{},
		},
		{
			name:   "skills split and trimmed",
			skills: " Python , SQL ,, ",
			want:   models.StudentSearch{Skills: []string{"Python", "SQL"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSearch(tt.college, tt.year, tt.skills)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRecruiterMountSearchesUnfiltered(t *testing.T) {
	var bodies []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recruiters/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.RecruiterProfile{
			ID: "r1", Name: "Ravi", Company: "Acme", Position: "HR", IsVerified: true,
		})
	})
	mux.HandleFunc("/api/recruiters/search-students", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(data))
		json.NewEncoder(w).Encode([]models.StudentResult{
			{ID: "s1", Name: "Asha", College: "MIT", SkillCount: 2},
		})
	})
	client := testAPI(t, mux)

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("search\nMIT\n\nPython, SQL\nquit\n"), &out)
	sess := session.Login("tok1", models.User{ID: "r1", Role: models.RoleRecruiter, Email: "r@b.com"})
	NewRecruiter(client, sess, prompter).Run(context.Background())

	if len(bodies) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(bodies))
	}
	if bodies[0] != "{}" {
		t.Fatalf("mount search must carry no filters, got %s", bodies[0])
	}
	var second models.StudentSearch
	if err := json.Unmarshal([]byte(bodies[1]), &second); err != nil {
		t.Fatalf("decode second search: %v", err)
	}
	want := models.StudentSearch{College: "MIT", Skills: []string{"Python", "SQL"}}
	if !reflect.DeepEqual(second, want) {
		t.Fatalf("expected %+v, got %+v", want, second)
	}
	if !strings.Contains(out.String(), "Asha") {
		t.Fatalf("expected search results rendered, got %q", out.String())
	}
}

func TestRecruiterFirstUseRunsProfileSetup(t *testing.T) {
	hasProfile := false
	var created models.RecruiterProfileCreate
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recruiters/profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !hasProfile {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail":"Recruiter profile not found"}`))
				return
			}
			json.NewEncoder(w).Encode(models.RecruiterProfile{
				ID: "r1", Name: "Ravi", Company: created.Company, Position: created.Position,
			})
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
				t.Errorf("decode profile create: %v", err)
			}
			hasProfile = true
			w.Write([]byte(`{"message":"Profile created successfully"}`))
		}
	})
	mux.HandleFunc("/api/recruiters/search-students", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.StudentResult{})
	})
	client := testAPI(t, mux)

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("Acme\nHR\n\nquit\n"), &out)
	sess := session.Login("tok1", models.User{ID: "r1", Role: models.RoleRecruiter, Email: "r@b.com"})
	NewRecruiter(client, sess, prompter).Run(context.Background())

	if created.Company != "Acme" || created.Position != "HR" {
		t.Fatalf("unexpected profile create: %+v", created)
	}
	if !strings.Contains(out.String(), "welcome, Ravi") {
		t.Fatalf("expected dashboard greeting, got %q", out.String())
	}
}

func TestRecruiterPostJob(t *testing.T) {
	var posted models.JobCreate
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recruiters/profile", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.RecruiterProfile{ID: "r1", Name: "Ravi", Company: "Acme"})
	})
	mux.HandleFunc("/api/recruiters/search-students", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.StudentResult{})
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
			t.Errorf("decode job create: %v", err)
		}
		w.Write([]byte(`{"message":"Job posted successfully"}`))
	})
	client := testAPI(t, mux)

	// title, company (default Acme), location, description, type (default
	// fulltime), skills, salary
	input := "post-job\nBackend Engineer\n\nRemote\nBuild APIs\n\nGo, SQL\n\nquit\n"
	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader(input), &out)
	sess := session.Login("tok1", models.User{ID: "r1", Role: models.RoleRecruiter, Email: "r@b.com"})
	NewRecruiter(client, sess, prompter).Run(context.Background())

	if posted.Title != "Backend Engineer" || posted.Company != "Acme" {
		t.Fatalf("unexpected job create: %+v", posted)
	}
	if posted.JobType != models.JobTypeFulltime {
		t.Fatalf("expected default job type fulltime, got %q", posted.JobType)
	}
	if !reflect.DeepEqual(posted.RequiredSkills, []string{"Go", "SQL"}) {
		t.Fatalf("unexpected skills: %v", posted.RequiredSkills)
	}
}
