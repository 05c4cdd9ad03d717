package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/RohitArisankala/Joblens/internal/models"
)

// RenderCourses lists courses with a 1-based index used by enroll/delete
// commands. completed marks skills already on the student's profile; nil for
// non-student views.
func RenderCourses(w io.Writer, courses []models.Course, completed map[string]bool) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "no courses available")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Skill", "Price", "Duration", "Status"})
	for i, course := range courses {
		status := "available"
		if completed[course.SkillName] {
			status = "completed"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			course.Title,
			course.SkillName,
			"₹" + strconv.FormatFloat(course.Price, 'f', -1, 64),
			course.Duration,
			status,
		})
	}
	table.Render()
}

func RenderJobs(w io.Writer, jobs []models.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(w, "no open jobs")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Title", "Company", "Location", "Type", "Skills", "Salary"})
	for i, job := range jobs {
		table.Append([]string{
			strconv.Itoa(i + 1),
			job.Title,
			job.Company,
			job.Location,
			job.JobType,
			strings.Join(job.RequiredSkills, ", "),
			job.Salary,
		})
	}
	table.Render()
}

func RenderApplications(w io.Writer, apps []models.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(w, "no applications yet")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Job", "Company", "Location", "Status", "Applied"})
	for _, app := range apps {
		table.Append([]string{
			app.JobTitle,
			app.Company,
			app.Location,
			app.Status,
			app.AppliedAt.Format("2006-01-02"),
		})
	}
	table.Render()
}

func RenderStudents(w io.Writer, students []models.StudentResult) {
	if len(students) == 0 {
		fmt.Fprintln(w, "no students matched")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "College", "Branch", "Year", "Skills"})
	for _, student := range students {
		skills := strings.Join(student.CompletedSkills, ", ")
		if skills == "" {
			skills = "none yet"
		}
		table.Append([]string{
			student.Name,
			student.College,
			student.Branch,
			strconv.Itoa(student.YearOfPassout),
			fmt.Sprintf("%d: %s", student.SkillCount, skills),
		})
	}
	table.Render()
}

func RenderStudentProfile(w io.Writer, profile models.StudentProfile) {
	fmt.Fprintf(w, "%s — %s, %s, class of %d\n", profile.Name, profile.Branch, profile.College, profile.YearOfPassout)
	if len(profile.CompletedSkills) == 0 {
		fmt.Fprintln(w, "complete courses to earn verified skill badges")
		return
	}
	fmt.Fprintf(w, "verified skills: %s\n", strings.Join(profile.CompletedSkills, ", "))
}

func RenderRecruiterProfile(w io.Writer, profile models.RecruiterProfile) {
	verified := "pending verification"
	if profile.IsVerified {
		verified = "verified"
	}
	fmt.Fprintf(w, "%s — %s at %s (%s)\n", profile.Name, profile.Position, profile.Company, verified)
}

func RenderAnalytics(w io.Writer, analytics models.Analytics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Students", "Recruiters", "Courses", "Jobs", "Applications"})
	table.Append([]string{
		strconv.Itoa(analytics.Stats.TotalStudents),
		strconv.Itoa(analytics.Stats.TotalRecruiters),
		strconv.Itoa(analytics.Stats.TotalCourses),
		strconv.Itoa(analytics.Stats.TotalJobs),
		strconv.Itoa(analytics.Stats.TotalApplications),
	})
	table.Render()
	for _, entry := range analytics.RecentActivity {
		fmt.Fprintf(w, "  [%s] %s\n", entry.Type, entry.Message)
	}
}

func RenderUsers(w io.Writer, users models.AdminUsers) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Role", "Verified"})
	for _, user := range users.Users {
		table.Append([]string{user.ID, user.Name, user.Email, user.Role, strconv.FormatBool(user.IsVerified)})
	}
	table.Render()

	if len(users.Recruiters) > 0 {
		fmt.Fprintln(w, "recruiters:")
		recruiters := tablewriter.NewWriter(w)
		recruiters.SetHeader([]string{"Name", "Company", "Position", "Verified"})
		for _, r := range users.Recruiters {
			recruiters.Append([]string{r.Name, r.Company, r.Position, strconv.FormatBool(r.IsVerified)})
		}
		recruiters.Render()
	}
}
