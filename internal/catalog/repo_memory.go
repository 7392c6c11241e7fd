package catalog

import (
	"context"
	"strings"
	"sync"

	"career-backend/internal/match"
)

// MemoryRepo is an in-memory implementation of Repo. Listing preserves
// insertion order so recommendation tie-breaks stay reproducible.
type MemoryRepo struct {
	mu      sync.RWMutex
	jobs    []match.Job
	courses []match.Course
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) CreateJob(ctx context.Context, job match.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *MemoryRepo) ListJobs(ctx context.Context, filter JobFilter) ([]match.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if filter.Industry != "" && !strings.EqualFold(job.Industry, filter.Industry) {
			continue
		}
		if filter.RemoteOnly && !job.Location.Remote {
			continue
		}
		if filter.City != "" && !job.Location.Remote && !strings.EqualFold(job.Location.City, filter.City) {
			continue
		}
		out = append(out, job)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepo) CreateCourse(ctx context.Context, course match.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = append(r.courses, course)
	return nil
}

func (r *MemoryRepo) ListCourses(ctx context.Context, filter CourseFilter) ([]match.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Course, 0, len(r.courses))
	for _, course := range r.courses {
		if filter.Provider != "" && !strings.EqualFold(course.Provider, filter.Provider) {
			continue
		}
		if filter.CareerPath != "" && !course.ServesRole(filter.CareerPath) {
			continue
		}
		out = append(out, course)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}
