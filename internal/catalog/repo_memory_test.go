package catalog

import (
	"context"
	"testing"

	"career-backend/internal/match"
)

func seedJobs(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	jobs := []match.Job{
		{ID: "j1", Title: "Backend Engineer", Company: "Globex", Industry: "fintech",
			Location: match.JobLocation{City: "Austin"}},
		{ID: "j2", Title: "Platform Engineer", Company: "Initech", Industry: "Fintech",
			Location: match.JobLocation{Remote: true}},
		{ID: "j3", Title: "Data Engineer", Company: "Hooli", Industry: "adtech",
			Location: match.JobLocation{City: "Denver"}},
	}
	for _, job := range jobs {
		if err := repo.CreateJob(context.Background(), job); err != nil {
			t.Fatalf("CreateJob(%s): %v", job.ID, err)
		}
	}
	return repo
}

func jobIDs(jobs []match.Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

func TestMemoryListJobsFilters(t *testing.T) {
	repo := seedJobs(t)

	tests := []struct {
		name   string
		filter JobFilter
		want   []string
	}{
		{"no filter preserves insertion order", JobFilter{}, []string{"j1", "j2", "j3"}},
		{"industry is case-insensitive", JobFilter{Industry: "FINTECH"}, []string{"j1", "j2"}},
		{"city keeps remote jobs", JobFilter{City: "austin"}, []string{"j1", "j2"}},
		{"remote only", JobFilter{RemoteOnly: true}, []string{"j2"}},
		{"limit truncates", JobFilter{Limit: 2}, []string{"j1", "j2"}},
		{"no match", JobFilter{Industry: "biotech"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := repo.ListJobs(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("ListJobs: %v", err)
			}
			got := jobIDs(jobs)
			if len(got) != len(tt.want) {
				t.Fatalf("ids = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ids = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMemoryListCoursesFilters(t *testing.T) {
	repo := NewMemoryRepo()
	courses := []match.Course{
		{ID: "c1", Title: "React Deep Dive", Provider: "Udemy",
			SkillsTaught: []match.TaughtSkill{{Name: "react"}},
			CareerPaths:  []string{"Frontend Developer"}},
		{ID: "c2", Title: "SQL Mastery", Provider: "Coursera",
			SkillsTaught: []match.TaughtSkill{{Name: "sql"}},
			JobRoles:     []string{"Data Engineer"}},
		{ID: "c3", Title: "Testing React Apps", Provider: "udemy",
			SkillsTaught: []match.TaughtSkill{{Name: "testing"}},
			CareerPaths:  []string{"frontend developer"}},
	}
	for _, course := range courses {
		if err := repo.CreateCourse(context.Background(), course); err != nil {
			t.Fatalf("CreateCourse(%s): %v", course.ID, err)
		}
	}

	byProvider, err := repo.ListCourses(context.Background(), CourseFilter{Provider: "UDEMY"})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(byProvider) != 2 || byProvider[0].ID != "c1" || byProvider[1].ID != "c3" {
		t.Fatalf("provider filter = %+v", byProvider)
	}

	byPath, err := repo.ListCourses(context.Background(), CourseFilter{CareerPath: "Frontend Developer"})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(byPath) != 2 {
		t.Fatalf("career path filter returned %d courses", len(byPath))
	}

	byRole, err := repo.ListCourses(context.Background(), CourseFilter{CareerPath: "data engineer"})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(byRole) != 1 || byRole[0].ID != "c2" {
		t.Fatalf("job role filter = %+v", byRole)
	}

	limited, err := repo.ListCourses(context.Background(), CourseFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "c1" {
		t.Fatalf("limited = %+v", limited)
	}
}

func TestMemoryRepoHonorsContext(t *testing.T) {
	repo := seedJobs(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.ListJobs(ctx, JobFilter{}); err == nil {
		t.Fatal("expected context error")
	}
	if err := repo.CreateJob(ctx, match.Job{ID: "j9"}); err == nil {
		t.Fatal("expected context error")
	}
}
