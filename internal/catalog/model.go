package catalog

import (
	"context"
	"errors"

	"career-backend/internal/match"
)

var (
	// ErrNotFound indicates an entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// JobFilter prefilters the job catalog before any scoring happens.
// Prefiltering is the store's responsibility, not the scorer's.
type JobFilter struct {
	Industry   string
	City       string
	RemoteOnly bool
	Limit      int
}

// CourseFilter prefilters the course catalog.
type CourseFilter struct {
	Provider   string
	CareerPath string
	Limit      int
}

// Repo persists and queries the job/course catalog.
type Repo interface {
	CreateJob(ctx context.Context, job match.Job) error
	ListJobs(ctx context.Context, filter JobFilter) ([]match.Job, error)
	CreateCourse(ctx context.Context, course match.Course) error
	ListCourses(ctx context.Context, filter CourseFilter) ([]match.Course, error)
}
