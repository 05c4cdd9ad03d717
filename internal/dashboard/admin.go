package dashboard

import (
	"context"
	"log"
	"sync"

	"github.com/RohitArisankala/Joblens/internal/api"
	"github.com/RohitArisankala/Joblens/internal/models"
	"github.com/RohitArisankala/Joblens/internal/session"
	"github.com/RohitArisankala/Joblens/internal/ui"
)

type Admin struct {
	api  *api.Client
	sess session.Session
	ui   *ui.Prompter

	courses   []models.Course
	jobs      []models.Job
	analytics models.Analytics
}

func NewAdmin(client *api.Client, sess session.Session, prompter *ui.Prompter) *Admin {
	return &Admin{api: client, sess: sess, ui: prompter}
}

func (d *Admin) Run(ctx context.Context) Action {
	d.refreshAll(ctx)

	d.ui.Printf("\nJobLens admin\n")
	ui.RenderAnalytics(d.ui.Out(), d.analytics)
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
		case "overview":
			ui.RenderAnalytics(d.ui.Out(), d.analytics)
		case "courses":
			ui.RenderCourses(d.ui.Out(), d.courses, nil)
		case "jobs":
			ui.RenderJobs(d.ui.Out(), d.jobs)
		case "users":
			d.showUsers(ctx)
		case "add-course":
			d.addCourse(ctx)
		case "edit-course":
			d.editCourse(ctx, args)
		case "add-job":
			d.addJob(ctx)
		case "delete-course":
			d.deleteCourse(ctx, args)
		case "delete-job":
			d.deleteJob(ctx, args)
		case "verify":
			d.verifyUser(ctx, args)
		case "refresh":
			d.refreshAll(ctx)
		case "logout":
			return ActionLogout
		case "quit", "exit":
			return ActionQuit
		default:
			d.ui.Printf("unknown command %q (try help)\n", verb)
		}
	}
}

func (d *Admin) help() {
	d.ui.Printf("commands: overview, courses, jobs, users, add-course, edit-course <#>, add-job, delete-course <#>, delete-job <#>, verify <user-id>, refresh, logout, quit\n")
}

// refreshAll seeds default data first, then reloads every list. Seeding is
// idempotent on the backend, so rerunning it after each admin write is safe.
func (d *Admin) refreshAll(ctx context.Context) {
	if err := d.api.InitData(ctx, d.sess.Token); err != nil {
		log.Printf("init default data: %v", err)
	}

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
		jobs, err := d.api.Jobs(ctx, d.sess.Token, api.JobFilter{})
		if err != nil {
			log.Printf("fetch jobs: %v", err)
			return
		}
		d.jobs = jobs
	}()
	go func() {
		defer wg.Done()
		analytics, err := d.api.Analytics(ctx, d.sess.Token)
		if err != nil {
			log.Printf("fetch analytics: %v", err)
			return
		}
		d.analytics = analytics
	}()
	wg.Wait()
}

func (d *Admin) showUsers(ctx context.Context) {
	users, err := d.api.AdminUsers(ctx, d.sess.Token)
	if err != nil {
		d.ui.Printf("failed to list users: %s\n", errText(err))
		return
	}
	ui.RenderUsers(d.ui.Out(), users)
}

func (d *Admin) addCourse(ctx context.Context) {
	req := models.CourseCreate{
		Title:       d.ui.Ask("course title"),
		Description: d.ui.Ask("description"),
		SkillName:   d.ui.Ask("skill name"),
		Price:       float64(d.ui.AskInt("price (₹)", 500)),
		Duration:    d.ui.AskDefault("duration", "2-3 hours"),
	}
	if err := ui.Validate(req); err != nil {
		d.ui.Printf("error: %v\n", err)
		return
	}
	if err := d.api.AddCourse(ctx, d.sess.Token, req); err != nil {
		d.ui.Printf("failed to add course: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("course %q added\n", req.Title)
}

// editCourse reprompts every field with the current value as the default.
func (d *Admin) editCourse(ctx context.Context, args []string) {
	idx, ok := pickIndex(d.ui, args, len(d.courses), "edit-course <#> from the courses list")
	if !ok {
		return
	}
	selected := d.courses[idx]
	req := models.CourseCreate{
		Title:       d.ui.AskDefault("course title", selected.Title),
		Description: d.ui.AskDefault("description", selected.Description),
		SkillName:   d.ui.AskDefault("skill name", selected.SkillName),
		Price:       float64(d.ui.AskInt("price (₹)", int(selected.Price))),
		Duration:    d.ui.AskDefault("duration", selected.Duration),
	}
	if err := ui.Validate(req); err != nil {
		d.ui.Printf("error: %v\n", err)
		return
	}
	if err := d.api.UpdateCourse(ctx, d.sess.Token, selected.ID, req); err != nil {
		d.ui.Printf("failed to update course: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("course %q updated\n", req.Title)
}

func (d *Admin) addJob(ctx context.Context) {
	req := models.JobCreate{
		Title:          d.ui.Ask("job title"),
		Company:        d.ui.Ask("company"),
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
		d.ui.Printf("failed to add job: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("job %q added\n", req.Title)
}

func (d *Admin) deleteCourse(ctx context.Context, args []string) {
	idx, ok := pickIndex(d.ui, args, len(d.courses), "delete-course <#> from the courses list")
	if !ok {
		return
	}
	selected := d.courses[idx]
	if !d.ui.Confirm("delete course " + selected.Title + "?") {
		return
	}
	if err := d.api.DeleteCourse(ctx, d.sess.Token, selected.ID); err != nil {
		d.ui.Printf("failed to delete course: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("course %q deleted\n", selected.Title)
}

func (d *Admin) deleteJob(ctx context.Context, args []string) {
	idx, ok := pickIndex(d.ui, args, len(d.jobs), "delete-job <#> from the jobs list")
	if !ok {
		return
	}
	selected := d.jobs[idx]
	if !d.ui.Confirm("delete job " + selected.Title + "?") {
		return
	}
	if err := d.api.DeleteJob(ctx, d.sess.Token, selected.ID); err != nil {
		d.ui.Printf("failed to delete job: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("job %q deleted\n", selected.Title)
}

func (d *Admin) verifyUser(ctx context.Context, args []string) {
	if len(args) != 1 {
		d.ui.Printf("usage: verify <user-id>\n")
		return
	}
	if err := d.api.VerifyUser(ctx, d.sess.Token, args[0]); err != nil {
		d.ui.Printf("failed to verify user: %s\n", errText(err))
		return
	}
	d.refreshAll(ctx)
	d.ui.Printf("user %s verified\n", args[0])
}
