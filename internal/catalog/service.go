package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"career-backend/internal/match"
)

// Service validates and persists catalog entries.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateJob validates a posting, assigns an ID when absent and stores it.
func (s *Service) CreateJob(ctx context.Context, job match.Job) (match.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	job.Company = strings.TrimSpace(job.Company)
	if job.Title == "" {
		return match.Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if job.Company == "" {
		return match.Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	for i, skill := range job.RequiredSkills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			return match.Job{}, fmt.Errorf("%w: required skill %d has no name", ErrInvalidInput, i)
		}
		job.RequiredSkills[i].Name = name
		if skill.Priority == "" {
			job.RequiredSkills[i].Priority = match.PriorityMedium
			continue
		}
		switch skill.Priority {
		case match.PriorityLow, match.PriorityMedium, match.PriorityHigh:
		default:
			return match.Job{}, fmt.Errorf("%w: unknown skill priority %q", ErrInvalidInput, skill.Priority)
		}
	}
	if job.MinimumYears < 0 {
		return match.Job{}, fmt.Errorf("%w: minimumYears cannot be negative", ErrInvalidInput)
	}
	if job.Salary != nil && job.Salary.Max > 0 && job.Salary.Min > job.Salary.Max {
		return match.Job{}, fmt.Errorf("%w: salary minimum exceeds maximum", ErrInvalidInput)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if err := s.Repo.CreateJob(ctx, job); err != nil {
		return match.Job{}, err
	}
	return job, nil
}

// ListJobs returns postings matching the filter.
func (s *Service) ListJobs(ctx context.Context, filter JobFilter) ([]match.Job, error) {
	return s.Repo.ListJobs(ctx, filter)
}

// CreateCourse validates a course, assigns an ID when absent and stores it.
func (s *Service) CreateCourse(ctx context.Context, course match.Course) (match.Course, error) {
	course.Title = strings.TrimSpace(course.Title)
	if course.Title == "" {
		return match.Course{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(course.SkillsTaught) == 0 {
		return match.Course{}, fmt.Errorf("%w: a course must teach at least one skill", ErrInvalidInput)
	}
	for i, skill := range course.SkillsTaught {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			return match.Course{}, fmt.Errorf("%w: taught skill %d has no name", ErrInvalidInput, i)
		}
		course.SkillsTaught[i].Name = name
	}
	if course.QualityScore < 0 || course.QualityScore > 10 {
		return match.Course{}, fmt.Errorf("%w: qualityScore must be between 0 and 10", ErrInvalidInput)
	}
	if course.Rating < 0 || course.Rating > 5 {
		return match.Course{}, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}
	if course.CompletionRate < 0 || course.CompletionRate > 1 {
		return match.Course{}, fmt.Errorf("%w: completionRate must be between 0 and 1", ErrInvalidInput)
	}
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if err := s.Repo.CreateCourse(ctx, course); err != nil {
		return match.Course{}, err
	}
	return course, nil
}

// ListCourses returns courses matching the filter.
func (s *Service) ListCourses(ctx context.Context, filter CourseFilter) ([]match.Course, error) {
	return s.Repo.ListCourses(ctx, filter)
}
