package guide

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-backend/internal/catalog"
	"career-backend/internal/goals"
	"career-backend/internal/match"
	"career-backend/internal/profiles"
	"career-backend/internal/roles"
	"career-backend/internal/usage"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T) *Service {
	t.Helper()

	scorer := match.NewScorer(match.DefaultConfig())
	scorer.Now = func() time.Time { return testNow }

	goalsSvc := goals.NewService(goals.NewMemoryRepo())
	goalsSvc.Now = func() time.Time { return testNow }

	return &Service{
		Scorer:   scorer,
		Profiles: profiles.NewService(profiles.NewMemoryRepo()),
		Catalog:  catalog.NewService(catalog.NewMemoryRepo()),
		Roles:    roles.NewRegistry(),
		Goals:    goalsSvc,
		Usage:    usage.NewService(),
	}
}

func saveProfile(t *testing.T, svc *Service, userID string) {
	t.Helper()
	_, err := svc.Profiles.Save(context.Background(), userID, profiles.Profile{
		UserID: userID,
		Skills: []match.Skill{
			{Name: "javascript"},
			{Name: "css"},
		},
		TargetRole: "Frontend Developer",
		Location:   match.Location{City: "Austin"},
		DesiredSalary: &match.SalaryRange{
			Min: 90000,
			Max: 120000,
		},
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
}

func seedCatalog(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	jobs := []match.Job{
		{
			ID: "job-react", Title: "Frontend Developer", Company: "Globex",
			RequiredSkills: []match.RequiredSkill{{Name: "javascript"}, {Name: "react"}},
			Location:       match.JobLocation{City: "Austin"},
			Salary:         &match.SalaryRange{Min: 100000, Max: 130000},
		},
		{
			ID: "job-remote", Title: "UI Engineer", Company: "Initech",
			RequiredSkills: []match.RequiredSkill{{Name: "css"}, {Name: "javascript"}},
			Location:       match.JobLocation{Remote: true},
			Salary:         &match.SalaryRange{Min: 95000, Max: 120000},
		},
		{
			ID: "job-elsewhere", Title: "Frontend Developer", Company: "Hooli",
			RequiredSkills: []match.RequiredSkill{{Name: "javascript"}},
			Location:       match.JobLocation{City: "Denver"},
			Salary:         &match.SalaryRange{Min: 60000, Max: 80000},
		},
	}
	for _, job := range jobs {
		if _, err := svc.Catalog.CreateJob(ctx, job); err != nil {
			t.Fatalf("seed job %s: %v", job.ID, err)
		}
	}

	courses := []match.Course{
		{
			ID: "course-react", Title: "React Deep Dive", Provider: "Udemy",
			SkillsTaught: []match.TaughtSkill{{Name: "react"}, {Name: "javascript"}},
			CareerPaths:  []string{"Frontend Developer"},
			QualityScore: 9, Rating: 4.7, Enrollment: 8000, CompletionRate: 0.6,
		},
		{
			ID: "course-ts", Title: "TypeScript Essentials", Provider: "Coursera",
			SkillsTaught: []match.TaughtSkill{{Name: "typescript"}},
			CareerPaths:  []string{"Frontend Developer"},
			QualityScore: 8, Rating: 4.4, Enrollment: 5000, CompletionRate: 0.5,
		},
		{
			ID: "course-a11y", Title: "Web Accessibility", Provider: "Udemy",
			SkillsTaught: []match.TaughtSkill{{Name: "accessibility"}},
			CareerPaths:  []string{"Frontend Developer"},
			QualityScore: 7, Rating: 4.1, Enrollment: 2000, CompletionRate: 0.4,
		},
	}
	for _, course := range courses {
		if _, err := svc.Catalog.CreateCourse(ctx, course); err != nil {
			t.Fatalf("seed course %s: %v", course.ID, err)
		}
	}
}

func TestRecommendJobsRanksByAdjustedScore(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")
	seedCatalog(t, svc)

	recs, err := svc.RecommendJobs(context.Background(), "user-1", JobQuery{})
	if err != nil {
		t.Fatalf("RecommendJobs: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].AdjustedScore > recs[i-1].AdjustedScore {
			t.Fatalf("recommendations not sorted: %d before %d", recs[i-1].AdjustedScore, recs[i].AdjustedScore)
		}
	}

	// The Denver job pays below the desired floor and is not remote, so it
	// carries both penalties and lands last.
	last, ok := recs[len(recs)-1].Entity.(*match.Job)
	if !ok || last.ID != "job-elsewhere" {
		t.Fatalf("last recommendation = %+v", recs[len(recs)-1].Entity)
	}
	if recs[len(recs)-1].AdjustedScore >= recs[len(recs)-1].Result.Score {
		t.Fatal("expected penalties to lower the adjusted score")
	}
}

func TestRecommendJobsNoProfile(t *testing.T) {
	svc := newTestEnv(t)
	seedCatalog(t, svc)

	if _, err := svc.RecommendJobs(context.Background(), "ghost", JobQuery{}); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("err = %v, want ErrNoProfile", err)
	}
}

func TestRecommendCoursesFiltersByTargetRole(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")
	seedCatalog(t, svc)

	// A course serving a different path must not appear.
	if _, err := svc.Catalog.CreateCourse(context.Background(), match.Course{
		ID: "course-ops", Title: "Kubernetes Basics",
		SkillsTaught: []match.TaughtSkill{{Name: "kubernetes"}},
		CareerPaths:  []string{"DevOps Engineer"},
		QualityScore: 8,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	recs, err := svc.RecommendCourses(context.Background(), "user-1", CourseQuery{})
	if err != nil {
		t.Fatalf("RecommendCourses: %v", err)
	}
	for _, rec := range recs {
		course := rec.Entity.(*match.Course)
		if course.ID == "course-ops" {
			t.Fatal("course outside the target path was recommended")
		}
	}
	if len(recs) != 3 {
		t.Fatalf("got %d course recommendations", len(recs))
	}
}

func TestSkillGapUsesProfileRole(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")

	report, err := svc.SkillGap(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("SkillGap: %v", err)
	}
	if report.TargetRole != "Frontend Developer" {
		t.Fatalf("target role = %q", report.TargetRole)
	}
	// javascript and css are covered; react, typescript, accessibility gap.
	if report.OverallReadiness != 55 {
		t.Fatalf("readiness = %d, want 55", report.OverallReadiness)
	}
}

func TestGenerateGuide(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")
	seedCatalog(t, svc)

	guide, err := svc.Generate(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(guide.Roadmap.Phases) != 3 {
		t.Fatalf("roadmap has %d phases", len(guide.Roadmap.Phases))
	}
	if len(guide.Goals) != 2 {
		t.Fatalf("guide persisted %d goals", len(guide.Goals))
	}
	if guide.Goals[0].TargetDate != testNow.AddDate(0, 0, 21) && guide.Goals[1].TargetDate != testNow.AddDate(0, 0, 21) {
		t.Fatalf("no goal due at +21d: %v / %v", guide.Goals[0].TargetDate, guide.Goals[1].TargetDate)
	}

	// Goals land in the goals store too.
	stored, err := svc.Goals.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("goals list: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d goals", len(stored))
	}

	// Phase courses never overlap across phases.
	seen := map[string]string{}
	for _, phase := range guide.Roadmap.Phases {
		for _, ref := range phase.Courses {
			if prev, dup := seen[ref.ID]; dup {
				t.Fatalf("course %s appears in both %s and %s", ref.ID, prev, phase.Name)
			}
			seen[ref.ID] = phase.Name
		}
	}

	// One usage unit consumed.
	u, err := svc.Usage.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("usage get: %v", err)
	}
	if u.Used != 1 {
		t.Fatalf("usage used = %d, want 1", u.Used)
	}
}

func TestGenerateGuideQuotaExhausted(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")
	seedCatalog(t, svc)

	u, err := svc.Usage.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("usage get: %v", err)
	}
	if _, err := svc.Usage.Consume(context.Background(), "user-1", u.Limit); err != nil {
		t.Fatalf("exhaust quota: %v", err)
	}

	if _, err := svc.Generate(context.Background(), "user-1", ""); !errors.Is(err, usage.ErrLimitReached) {
		t.Fatalf("err = %v, want ErrLimitReached", err)
	}
}

func TestGenerateGuideDeterministicGoals(t *testing.T) {
	svc := newTestEnv(t)
	saveProfile(t, svc, "user-1")
	seedCatalog(t, svc)

	first, err := svc.Generate(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := svc.Generate(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Generate again: %v", err)
	}
	if first.Goals[0].ID != second.Goals[0].ID || first.Goals[1].ID != second.Goals[1].ID {
		t.Fatalf("goal IDs changed between runs: %v vs %v", first.Goals, second.Goals)
	}

	stored, err := svc.Goals.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("goals list: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("regeneration stacked goals: %d", len(stored))
	}
}
