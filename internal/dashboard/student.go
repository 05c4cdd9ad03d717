package dashboard

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/RohitArisankala/Joblens/internal/api"
	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

type Student struct {
	api  *api.Client
	sess session.Session
	ui   *ui.Prompter

	profile      models.StudentProfile
	courses      []models.Course
	jobs         []models.Job
	jobFilter    api.JobFilter
	applications []models.Application
}

func NewStudent(client *api.Client, sess session.Session, prompter *ui.Prompter) *Student {
	return &Student{api: client, sess: sess, ui: prompter}
}

func (d *Student) Run(ctx context.Context) Action {
	if action, ok := d.ensureProfile(ctx); !ok {
		return action
	}
	d.fetchLists(ctx)

	d.ui.Printf("\nwelcome, %s\n", d.profile.Name)
	ui.RenderStudentProfile(d.ui.Out(), d.profile)
	d.help()

	for {
		verb, args, ok := d.ui.ReadCommand()
		if !ok {
			return ActionQuit
		}
		switch verb {
		case "":
		case "help":
			d.help()
		case "profile":
			ui.RenderStudentProfile(d.ui.Out(), d.profile)
		case "courses":
			ui.RenderCourses(d.ui.Out(), d.courses, d.completedSet())
		case "jobs":
			d.showJobs(ctx, args)
		case "applications", "apps":
			ui.RenderApplications(d.ui.Out(), d.applications)
		case "enroll":
			d.enroll(ctx, args)
		case "apply":
			d.apply(ctx, args)
		case "refresh":
			d.refreshProfile(ctx)
			d.fetchLists(ctx)
		case "logout":
			return ActionLogout
		case "quit", "exit":
			return ActionQuit
		default:
			d.ui.Printf("unknown command %q (try help)\n", verb)
		}
	}
}

func (d *Student) help() {
	d.ui.Printf("commands: profile, courses, jobs [fulltime|internship], applications, enroll <#>, apply <#>, refresh, logout, quit\n")
}

// showJobs renders the job list, optionally narrowed by type. A filtered
// fetch replaces the cached list so apply indexes match what is on screen.
func (d *Student) showJobs(ctx context.Context, args []string) {
	if len(args) == 1 {
		switch args[0] {
		case models.JobTypeFulltime, models.JobTypeInternship:
			d.jobFilter = api.JobFilter{JobType: args[0]}
		case "all":
			d.jobFilter = api.JobFilter{}
		default:
			d.ui.Printf("unknown job type %q (fulltime, internship or all)\n", args[0])
			return
		}
		jobs, err := d.api.Jobs(ctx, d.sess.Token, d.jobFilter)
		if err != nil {
			d.ui.Printf("failed to fetch jobs: %s\n", errText(err))
			return
		}
		d.jobs = jobs
	}
	ui.RenderJobs(d.ui.Out(), d.jobs)
}

// ensureProfile gates the dashboard behind a profile. A 404 from the backend
// means first use: the setup form runs until a profile exists, and the gate
// never re-opens for the rest of the session.
func (d *Student) ensureProfile(ctx context.Context) (Action, bool) {
	profile, err := d.api.StudentProfile(ctx, d.sess.Token)
	if err == nil {
		d.profile = profile
		return ActionNone, true
	}
	if sessionExpired(err) {
		d.ui.Printf("session expired, please log in again\n")
		return ActionLogout, false
	}
	if !errors.Is(err, api.ErrNotFound) {
		log.Printf("fetch student profile: %v", err)
		return ActionNone, true
	}

	if !d.setupProfile(ctx) {
		return ActionQuit, false
	}
	profile, err = d.api.StudentProfile(ctx, d.sess.Token)
	if err != nil {
		log.Printf("fetch student profile: %v", err)
		return ActionNone, true
	}
	d.profile = profile
	return ActionNone, true
}

func (d *Student) setupProfile(ctx context.Context) bool {
	d.ui.Printf("\ncomplete your profile to continue\n")
	for {
		req := models.StudentProfileCreate{
			College:       d.ui.Ask("college"),
			Branch:        d.ui.Ask("branch"),
			YearOfPassout: d.ui.AskInt("year of pass-out", time.Now().Year()+1),
			Phone:         d.ui.Ask("phone (optional)"),
		}
		if err := ui.Validate(req); err != nil {
			d.ui.Printf("error: %v\n", err)
		} else if err := d.api.CreateStudentProfile(ctx, d.sess.Token, req); err != nil {
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

func (d *Student) refreshProfile(ctx context.Context) {
	profile, err := d.api.StudentProfile(ctx, d.sess.Token)
	if err != nil {
		log.Printf("fetch student profile: %v", err)
		return
	}
	d.profile = profile
}

// fetchLists loads the three dashboard lists concurrently. The fetches are
// independent and each goroutine writes only its own field.
func (d *Student) fetchLists(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		courses, err := d.api.Courses(ctx, d.sess.Token)
		if err != nil {
			log.Printf("fetch courses: %v", err)
			return
		}
		d.courses = courses
	}()
	go func() {
		defer wg.Done()
		jobs, err := d.api.Jobs(ctx, d.sess.Token, d.jobFilter)
		if err != nil {
			log.Printf("fetch jobs: %v", err)
			return
		}
		d.jobs = jobs
	}()
	go func() {
		defer wg.Done()
		apps, err := d.api.Applications(ctx, d.sess.Token)
		if err != nil {
			log.Printf("fetch applications: %v", err)
			return
		}
		d.applications = apps
	}()
	wg.Wait()
}

func (d *Student) completedSet() map[string]bool {
	set := make(map[string]bool, len(d.profile.CompletedSkills))
	for _, skill := range d.profile.CompletedSkills {
		set[skill] = true
	}
	return set
}

// enroll completes a course's skill, then refetches the profile so the new
// badge shows up. Write first, then exactly one read.
func (d *Student) enroll(ctx context.Context, args []string) {
	course, ok := pickIndex(d.ui, args, len(d.courses), "enroll <#> from the courses list")
	if !ok {
		return
	}
	selected := d.courses[course]
	if d.profile.HasSkill(selected.SkillName) {
		d.ui.Printf("%s is already on your profile\n", selected.SkillName)
		return
	}
	if err := d.api.CompleteSkill(ctx, d.sess.Token, selected.SkillName); err != nil {
		d.ui.Printf("failed to complete skill: %s\n", errText(err))
		return
	}
	d.refreshProfile(ctx)
	d.ui.Printf("skill %q verified\n", selected.SkillName)
}

// apply submits a job application, then refetches the applications list.
func (d *Student) apply(ctx context.Context, args []string) {
	job, ok := pickIndex(d.ui, args, len(d.jobs), "apply <#> from the jobs list")
	if !ok {
		return
	}
	selected := d.jobs[job]
	if err := d.api.ApplyToJob(ctx, d.sess.Token, selected.ID); err != nil {
		d.ui.Printf("failed to apply: %s\n", errText(err))
		return
	}
	apps, err := d.api.Applications(ctx, d.sess.Token)
	if err != nil {
		log.Printf("fetch applications: %v", err)
	} else {
		d.applications = apps
	}
	d.ui.Printf("applied to %s at %s\n", selected.Title, selected.Company)
}

// pickIndex resolves a 1-based list argument, reporting usage on bad input.
func pickIndex(prompter *ui.Prompter, args []string, size int, usage string) (int, bool) {
	if len(args) != 1 {
		prompter.Printf("usage: %s\n", usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > size {
		prompter.Printf("no entry %q (list has %d)\n", args[0], size)
		return 0, false
	}
	return n - 1, true
}
