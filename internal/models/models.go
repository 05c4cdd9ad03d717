package models

import "time"

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

const (
	JobTypeFulltime   = "fulltime"
	JobTypeInternship = "internship"
)

type User struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserRole    string `json:"user_role"`
	UserID      string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student recruiter"`
}

type StudentProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	College         string   `json:"college"`
	Branch          string   `json:"branch"`
	YearOfPassout   int      `json:"year_of_passout"`
	CompletedSkills []string `json:"completed_skills"`
	Phone           string   `json:"phone"`
}

func (p StudentProfile) HasSkill(name string) bool {
	for _, s := range p.CompletedSkills {
		if s == name {
			return true
		}
	}
	return false
}

type StudentProfileCreate struct {
	College       string `json:"college" validate:"required"`
	Branch        string `json:"branch" validate:"required"`
	YearOfPassout int    `json:"year_of_passout" validate:"required"`
	Phone         string `json:"phone,omitempty"`
}

type RecruiterProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"is_verified"`
}

type RecruiterProfileCreate struct {
	Company  string `json:"company" validate:"required"`
	Position string `json:"position" validate:"required"`
	Phone    string `json:"phone,omitempty"`
}

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	SkillName   string    `json:"skill_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseCreate struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	SkillName   string  `json:"skill_name" validate:"required"`
}

type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	JobType         string    `json:"job_type"`
	RequiredSkills  []string  `json:"required_skills"`
	YearLevel       string    `json:"year_level,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	Salary          string    `json:"salary,omitempty"`
	PostedBy        string    `json:"posted_by"`
	CreatedAt       time.Time `json:"created_at"`
}

type JobCreate struct {
	Title           string   `json:"title" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	JobType         string   `json:"job_type" validate:"required,oneof=fulltime internship"`
	RequiredSkills  []string `json:"required_skills"`
	YearLevel       string   `json:"year_level,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Salary          string   `json:"salary,omitempty"`
}

type Application struct {
	ApplicationID string    `json:"application_id"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// StudentSearch filters are omitted from the request body entirely when
// blank; the backend treats an absent filter as "match all".
type StudentSearch struct {
	College       string   `json:"college,omitempty"`
	YearOfPassout int      `json:"year_of_passout,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

type StudentResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	College         string   `json:"college"`
	Branch          string   `json:"branch"`
	YearOfPassout   int      `json:"year_of_passout"`
	CompletedSkills []string `json:"completed_skills"`
	SkillCount      int      `json:"skill_count"`
}

type AnalyticsStats struct {
	TotalUsers        int `json:"total_users"`
	TotalStudents     int `json:"total_students"`
	TotalRecruiters   int `json:"total_recruiters"`
	TotalCourses      int `json:"total_courses"`
	TotalJobs         int `json:"total_jobs"`
	TotalApplications int `json:"total_applications"`
}

type ActivityEntry struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Analytics struct {
	Stats          AnalyticsStats  `json:"stats"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

type AdminUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	IsVerified bool      `json:"is_verified"`
}

type AdminRecruiter struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	IsVerified bool   `json:"is_verified"`
}

type AdminUsers struct {
	Users      []AdminUser      `json:"users"`
	Students   []StudentResult  `json:"students"`
	Recruiters []AdminRecruiter `json:"recruiters"`
}
