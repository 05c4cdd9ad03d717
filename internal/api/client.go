// Package api is the typed request/response boundary between the dashboards
// and the JobLens backend. The bearer token is an explicit argument on every
// authenticated call; the client keeps no ambient credential state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/RohitArisankala/Joblens/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient points the client at one backend deployment. All paths below are
// relative to <backendURL>/api.
func NewClient(backendURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(backendURL, "/") + "/api",
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(&loggingTransport{next: http.DefaultTransport}),
		},
	}
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp)
	return resp, err
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp)
	return resp, err
}

func (c *Client) StudentProfile(ctx context.Context, token string) (models.StudentProfile, error) {
	var profile models.StudentProfile
	err := c.do(ctx, http.MethodGet, "/students/profile", token, nil, &profile)
	return profile, err
}

func (c *Client) CreateStudentProfile(ctx context.Context, token string, req models.StudentProfileCreate) error {
	return c.do(ctx, http.MethodPost, "/students/profile", token, req, nil)
}

func (c *Client) CompleteSkill(ctx context.Context, token, skillName string) error {
	return c.do(ctx, http.MethodPost, "/students/complete-skill/"+url.PathEscape(skillName), token, nil, nil)
}

func (c *Client) Applications(ctx context.Context, token string) ([]models.Application, error) {
	var apps []models.Application
	err := c.do(ctx, http.MethodGet, "/students/applications", token, nil, &apps)
	return apps, err
}

func (c *Client) Courses(ctx context.Context, token string) ([]models.Course, error) {
	var courses []models.Course
	err := c.do(ctx, http.MethodGet, "/courses", token, nil, &courses)
	return courses, err
}

// JobFilter narrows the job listing. Blank fields are left out of the query.
type JobFilter struct {
	JobType         string
	YearLevel       string
	ExperienceLevel string
}

func (f JobFilter) query() string {
	values := url.Values{}
	if f.JobType != "" {
		values.Set("job_type", f.JobType)
	}
	if f.YearLevel != "" {
		values.Set("year_level", f.YearLevel)
	}
	if f.ExperienceLevel != "" {
		values.Set("experience_level", f.ExperienceLevel)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) Jobs(ctx context.Context, token string, filter JobFilter) ([]models.Job, error) {
	var jobs []models.Job
	err := c.do(ctx, http.MethodGet, "/jobs"+filter.query(), token, nil, &jobs)
	return jobs, err
}

func (c *Client) ApplyToJob(ctx context.Context, token, jobID string) error {
	return c.do(ctx, http.MethodPost, "/jobs/"+url.PathEscape(jobID)+"/apply", token, nil, nil)
}

func (c *Client) CreateJob(ctx context.Context, token string, req models.JobCreate) error {
	return c.do(ctx, http.MethodPost, "/jobs", token, req, nil)
}

func (c *Client) RecruiterProfile(ctx context.Context, token string) (models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := c.do(ctx, http.MethodGet, "/recruiters/profile", token, nil, &profile)
	return profile, err
}

func (c *Client) CreateRecruiterProfile(ctx context.Context, token string, req models.RecruiterProfileCreate) error {
	return c.do(ctx, http.MethodPost, "/recruiters/profile", token, req, nil)
}

func (c *Client) SearchStudents(ctx context.Context, token string, search models.StudentSearch) ([]models.StudentResult, error) {
	var students []models.StudentResult
	err := c.do(ctx, http.MethodPost, "/recruiters/search-students", token, search, &students)
	return students, err
}

func (c *Client) InitData(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/admin/init-data", token, nil, nil)
}

func (c *Client) AddCourse(ctx context.Context, token string, req models.CourseCreate) error {
	return c.do(ctx, http.MethodPost, "/admin/courses", token, req, nil)
}

func (c *Client) UpdateCourse(ctx context.Context, token, courseID string, req models.CourseCreate) error {
	return c.do(ctx, http.MethodPut, "/admin/courses/"+url.PathEscape(courseID), token, req, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, token, courseID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/courses/"+url.PathEscape(courseID), token, nil, nil)
}

func (c *Client) DeleteJob(ctx context.Context, token, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/jobs/"+url.PathEscape(jobID), token, nil, nil)
}

func (c *Client) AdminUsers(ctx context.Context, token string) (models.AdminUsers, error) {
	var users models.AdminUsers
	err := c.do(ctx, http.MethodGet, "/admin/users", token, nil, &users)
	return users, err
}

func (c *Client) VerifyUser(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/verify", token, nil, nil)
}

func (c *Client) Analytics(ctx context.Context, token string) (models.Analytics, error) {
	var analytics models.Analytics
	err := c.do(ctx, http.MethodGet, "/admin/analytics", token, nil, &analytics)
	return analytics, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError surfaces the backend's detail message when the error body has
// one. Validation failures arrive as a structure rather than a string; those
// are passed through raw.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if json.Unmarshal(data, &payload) != nil || len(payload.Detail) == 0 {
		return apiErr
	}

	var detail string
	if json.Unmarshal(payload.Detail, &detail) == nil && detail != "" {
		apiErr.Detail = detail
	} else {
		apiErr.Detail = string(payload.Detail)
	}
	return apiErr
}
