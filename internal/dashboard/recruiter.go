package dashboard

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/RohitArisankala/Joblens/internal/api"
	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

type Recruiter struct {
	api  *api.Client
	sess session.Session
	ui   *ui.Prompter

	profile    models.RecruiterProfile
	students   []models.StudentResult
	lastSearch models.StudentSearch
}

func NewRecruiter(client *api.Client, sess session.Session, prompter *ui.Prompter) *Recruiter {
	return &Recruiter{api: client, sess: sess, ui: prompter}
}

func (d *Recruiter) Run(ctx context.Context) Action {
	if action, ok := d.ensureProfile(ctx); !ok {
		return action
	}
	// unfiltered search on entry, like the dashboard's initial listing
	d.search(ctx, models.StudentSearch{})

	d.ui.Printf("\nwelcome, %s\n", d.profile.Name)
	ui.RenderRecruiterProfile(d.ui.Out(), d.profile)
	d.help()

	for {
		verb, _, ok := d.ui.ReadCommand()
		if !ok {
			return ActionQuit
		}
		switch verb {
		case "":
		case "help":
			d.help()
		case "profile":
			ui.RenderRecruiterProfile(d.ui.Out(), d.profile)
		case "students":
			ui.RenderStudents(d.ui.Out(), d.students)
		case "search":
			d.promptSearch(ctx)
		case "post-job":
			d.postJob(ctx)
		case "refresh":
			d.search(ctx, d.lastSearch)
		case "logout":
			return ActionLogout
		case "quit", "exit":
			return ActionQuit
		default:
			d.ui.Printf("unknown command %q (try help)\n", verb)
		}
	}
}

func (d *Recruiter) help() {
	d.ui.Printf("commands: profile, students, search, post-job, refresh, logout, quit\n")
}

func (d *Recruiter) ensureProfile(ctx context.Context) (Action, bool) {
	profile, err := d.api.RecruiterProfile(ctx, d.sess.Token)
	if err == nil {
		d.profile = profile
		return ActionNone, true
	}
	if sessionExpired(err) {
		d.ui.Printf("session expired, please log in again\n")
		return ActionLogout, false
	}
	if !errors.Is(err, api.ErrNotFound) {
		log.Printf("fetch recruiter profile: %v", err)
		return ActionNone, true
	}

	if !d.setupProfile(ctx) {
		return ActionQuit, false
	}
	profile, err = d.api.RecruiterProfile(ctx, d.sess.Token)
	if err != nil {
		log.Printf("fetch recruiter profile: %v", err)
		return ActionNone, true
	}
	d.profile = profile
	return ActionNone, true
}

func (d *Recruiter) setupProfile(ctx context.Context) bool {
	d.ui.Printf("\ncomplete your recruiter profile to continue\n")
	for {
		req := models.RecruiterProfileCreate{
			Company:  d.ui.Ask("company"),
			Position: d.ui.Ask("position"),
			Phone:    d.ui.Ask("phone (optional)"),
		}
		if err := ui.Validate(req); err != nil {
			d.ui.Printf("error: %v\n", err)
		} else if err := d.api.CreateRecruiterProfile(ctx, d.sess.Token, req); err != nil {
			d.ui.Printf("failed to create profile: %s\n", errText(err))
		} else {
			d.ui.Printf("profile created\n")
			return true
		}
		if d.ui.Done() {
			return false
		}
	}
}

func (d *Recruiter) promptSearch(ctx context.Context) {
	college := d.ui.Ask("college (blank for any)")
	year := d.ui.Ask("year of pass-out (blank for any)")
	skills := d.ui.Ask("skills, comma separated (blank for any)")

	if year != "" {
		if _, err := strconv.Atoi(strings.TrimSpace(year)); err != nil {
			d.ui.Printf("ignoring year %q: not a number\n", year)
		}
	}
	d.search(ctx, BuildSearch(college, year, skills))
}

func (d *Recruiter) search(ctx context.Context, search models.StudentSearch) {
	d.lastSearch = search
	students, err := d.api.SearchStudents(ctx, d.sess.Token, search)
	if err != nil {
		log.Printf("search students: %v", err)
		return
	}
	d.students = students
	ui.RenderStudents(d.ui.Out(), d.students)
}

// postJob lets a recruiter publish an opening directly.
func (d *Recruiter) postJob(ctx context.Context) {
	req := models.JobCreate{
		Title:          d.ui.Ask("job title"),
		Company:        d.ui.AskDefault("company", d.profile.Company),
		Location:       d.ui.Ask("location"),
		Description:    d.ui.Ask("description"),
		JobType:        d.ui.AskDefault("job type (fulltime/internship)", models.JobTypeFulltime),
		RequiredSkills: ui.SplitList(d.ui.Ask("required skills, comma separated")),
		Salary:         d.ui.Ask("salary (optional)"),
	}
	if err := ui.Validate(req); err != nil {
		d.ui.Printf("error: %v\n", err)
		return
	}
	if err := d.api.CreateJob(ctx, d.sess.Token, req); err != nil {
		d.ui.Printf("failed to post job: %s\n", errText(err))
		return
	}
	d.ui.Printf("job %q posted\n", req.Title)
}

// BuildSearch shapes raw filter input into the search request. Blank filters
// are dropped so the backend matches everything; skills are comma-split and
// trimmed; a non-numeric year is dropped rather than sent.
func BuildSearch(college, year, skills string) models.StudentSearch {
	search := models.StudentSearch{
		College: strings.TrimSpace(college),
		Skills:  ui.SplitList(skills),
	}
	if y, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		search.YearOfPassout = y
	}
	return search
}
