package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

type fakeAdminBackend struct {
	mu sync.Mutex

	initCalls    int
	deleteCalls  int
	verifyCalls  int
	deletedID    string
	verifiedID   string
	addedCourses []models.CourseCreate
	updated      models.CourseCreate
	updatedID    string
}

func (f *fakeAdminBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/init-data", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.initCalls++
		w.Write([]byte(`{"message":"Default data initialized"}`))
	})
	mux.HandleFunc("/api/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Course{
			{
				ID: "c1", Title: "Resume Building", SkillName: "Resume Building",
				Description: "Craft a resume recruiters read", Price: 500, Duration: "2-3 hours",
			},
		})
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Job{
			{ID: "job42", Title: "Backend Intern", Company: "Acme"},
		})
	})
	mux.HandleFunc("/api/admin/analytics", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Analytics{
			Stats: models.AnalyticsStats{TotalUsers: 3, TotalCourses: 1, TotalJobs: 1},
		})
	})
	mux.HandleFunc("/api/admin/courses", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var req models.CourseCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode course create: %v", err)
		}
		f.addedCourses = append(f.addedCourses, req)
		w.Write([]byte(`{"message":"Course added successfully"}`))
	})
	mux.HandleFunc("/api/admin/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodDelete:
			f.deleteCalls++
			f.deletedID = "c1"
		case http.MethodPut:
			f.updatedID = "c1"
			if err := json.NewDecoder(r.Body).Decode(&f.updated); err != nil {
				t.Errorf("decode course update: %v", err)
			}
		}
		w.Write([]byte(`{"message":"ok"}`))
	})
	mux.HandleFunc("/api/admin/users/u7/verify", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodPut {
			f.verifyCalls++
			f.verifiedID = "u7"
		}
		w.Write([]byte(`{"message":"User verified successfully"}`))
	})
	return mux
}

func adminSession() session.Session {
	return session.Login("tok1", models.User{ID: "adm1", Role: models.RoleAdmin, Email: "admin@b.com"})
}

func TestAdminMountSeedsThenFetches(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("quit\n"), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if backend.initCalls != 1 {
		t.Fatalf("expected 1 init-data call on mount, got %d", backend.initCalls)
	}
	if !strings.Contains(out.String(), "JobLens admin") {
		t.Fatalf("expected admin banner, got %q", out.String())
	}
}

func TestAdminDeleteCourseConfirmedThenRefetches(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("delete-course 1\ny\nquit\n"), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if backend.deleteCalls != 1 {
		t.Fatalf("expected 1 delete call, got %d", backend.deleteCalls)
	}
	if backend.deletedID != "c1" {
		t.Fatalf("expected course c1 deleted, got %q", backend.deletedID)
	}
	// mount, then again after the write
	if backend.initCalls != 2 {
		t.Fatalf("expected 2 refreshes, got %d", backend.initCalls)
	}
}

func TestAdminDeleteCourseDeclined(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("delete-course 1\nn\nquit\n"), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if backend.deleteCalls != 0 {
		t.Fatalf("expected no delete call, got %d", backend.deleteCalls)
	}
	if backend.initCalls != 1 {
		t.Fatalf("expected only the mount refresh, got %d", backend.initCalls)
	}
}

func TestAdminAddCourseDefaults(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	// title, description, skill, blank price (default 500), blank duration
	input := "add-course\nSQL Basics\nLearn joins\nSQL\n\n\nquit\n"
	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader(input), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if len(backend.addedCourses) != 1 {
		t.Fatalf("expected 1 course added, got %d", len(backend.addedCourses))
	}
	added := backend.addedCourses[0]
	if added.Title != "SQL Basics" || added.SkillName != "SQL" {
		t.Fatalf("unexpected course create: %+v", added)
	}
	if added.Price != 500 {
		t.Fatalf("expected default price 500, got %v", added.Price)
	}
	if added.Duration != "2-3 hours" {
		t.Fatalf("expected default duration, got %q", added.Duration)
	}
	if backend.initCalls != 2 {
		t.Fatalf("expected refresh after write, got %d refreshes", backend.initCalls)
	}
}

func TestAdminEditCourseKeepsBlankFieldsAsCurrent(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	// new title, everything else blank keeps the current value
	input := "edit-course 1\nInterview Prep\n\n\n\n\nquit\n"
	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader(input), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if backend.updatedID != "c1" {
		t.Fatalf("expected course c1 updated, got %q", backend.updatedID)
	}
	if backend.updated.Title != "Interview Prep" {
		t.Fatalf("unexpected title: %q", backend.updated.Title)
	}
	if backend.updated.SkillName != "Resume Building" {
		t.Fatalf("blank skill must keep current value, got %q", backend.updated.SkillName)
	}
	if backend.initCalls != 2 {
		t.Fatalf("expected refresh after update, got %d refreshes", backend.initCalls)
	}
}

func TestAdminVerifyUserRefetches(t *testing.T) {
	backend := &fakeAdminBackend{}
	client := testAPI(t, backend.handler(t))

	var out strings.Builder
	prompter := ui.NewPrompter(strings.NewReader("verify u7\nquit\n"), &out)
	NewAdmin(client, adminSession(), prompter).Run(context.Background())

	if backend.verifyCalls != 1 || backend.verifiedID != "u7" {
		t.Fatalf("expected user u7 verified once, got %d calls for %q", backend.verifyCalls, backend.verifiedID)
	}
	if backend.initCalls != 2 {
		t.Fatalf("expected refresh after verify, got %d refreshes", backend.initCalls)
	}
}
