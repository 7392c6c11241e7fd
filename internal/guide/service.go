package guide

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-backend/internal/catalog"
	"career-backend/internal/goals"
	"career-backend/internal/match"
	"career-backend/internal/profiles"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/telemetry"
	"career-backend/internal/usage"
)

// ErrNoProfile indicates the user has not saved a profile yet, so there is
// nothing to match against.
var ErrNoProfile = errors.New("no profile")

// Service composes the matching engine with the catalog, profiles, goals
// and usage quota. All ranking decisions live in the engine; this layer
// only fetches inputs and persists outputs.
type Service struct {
	Scorer   *match.Scorer
	Profiles *profiles.Service
	Catalog  *catalog.Service
	Roles    match.RoleRegistry
	Goals    *goals.Service
	Usage    *usage.Service
}

// JobQuery narrows job recommendations.
type JobQuery struct {
	Industry   string
	City       string
	RemoteOnly bool
	Limit      int
}

// CourseQuery narrows course recommendations.
type CourseQuery struct {
	Provider string
	Limit    int
}

func (s *Service) snapshot(ctx context.Context, userID string) (*match.Profile, error) {
	p, err := s.Profiles.Snapshot(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return p, nil
}

// RecommendJobs ranks catalog jobs against the user's profile. The user's
// own location and salary expectations drive the preference penalties.
func (s *Service) RecommendJobs(ctx context.Context, userID string, query JobQuery) ([]match.Recommendation, error) {
	profile, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Catalog.ListJobs(ctx, catalog.JobFilter{
		Industry:   query.Industry,
		City:       query.City,
		RemoteOnly: query.RemoteOnly,
	})
	if err != nil {
		return nil, err
	}

	entities := make([]match.Entity, len(jobs))
	for i := range jobs {
		entities[i] = &jobs[i]
	}

	opts := match.Options{Limit: query.Limit}
	if !profile.Location.RemotePreferred {
		opts.PreferredCity = profile.Location.City
	}
	if profile.DesiredSalary != nil {
		opts.SalaryFloor = profile.DesiredSalary.Min
	}

	recs, err := s.Scorer.Recommend(profile, entities, opts)
	if err != nil {
		return nil, err
	}
	metrics.IncJobRecommendations()
	return recs, nil
}

// RecommendCourses ranks catalog courses against the user's profile,
// narrowed to courses serving the target role when one is set.
func (s *Service) RecommendCourses(ctx context.Context, userID string, query CourseQuery) ([]match.Recommendation, error) {
	profile, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.Catalog.ListCourses(ctx, catalog.CourseFilter{
		Provider:   query.Provider,
		CareerPath: profile.TargetRole,
	})
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 && profile.TargetRole != "" {
		// A sparse catalog beats an empty answer.
		courses, err = s.Catalog.ListCourses(ctx, catalog.CourseFilter{Provider: query.Provider})
		if err != nil {
			return nil, err
		}
	}

	entities := make([]match.Entity, len(courses))
	for i := range courses {
		entities[i] = &courses[i]
	}

	recs, err := s.Scorer.Recommend(profile, entities, match.Options{Limit: query.Limit})
	if err != nil {
		return nil, err
	}
	metrics.IncCourseRecommendations()
	return recs, nil
}

// SkillGap analyzes the user's skills against a target role. An empty role
// uses the profile's target role; the registry default covers the rest.
func (s *Service) SkillGap(ctx context.Context, userID, role string) (match.SkillGapReport, error) {
	profile, err := s.snapshot(ctx, userID)
	if err != nil {
		return match.SkillGapReport{}, err
	}
	if role == "" {
		role = profile.TargetRole
	}
	return s.Scorer.AnalyzeGaps(profile.Skills, role, s.Roles), nil
}

// Guide is the composite output of one career guide generation.
type Guide struct {
	GapReport   match.SkillGapReport   `json:"skillGap"`
	Courses     []match.Recommendation `json:"recommendedCourses"`
	Jobs        []match.Recommendation `json:"recommendedJobs"`
	Roadmap     match.Roadmap          `json:"roadmap"`
	Goals       []goals.Goal           `json:"starterGoals"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// Generate builds a full career guide: gap report, ranked courses and jobs,
// a three-phase roadmap and persisted starter goals. It consumes one usage
// unit and fails before doing any work when the quota is exhausted.
func (s *Service) Generate(ctx context.Context, userID, role string) (Guide, error) {
	started := metrics.NowMillis()

	ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
	if err != nil {
		return Guide{}, err
	}
	if !ok {
		return Guide{}, usage.ErrLimitReached
	}

	guide, err := s.generate(ctx, userID, role)
	if err != nil {
		metrics.IncGuideFailed()
		return Guide{}, err
	}

	if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
		metrics.IncGuideFailed()
		return Guide{}, fmt.Errorf("consume usage: %w", err)
	}

	metrics.IncGuideGenerated()
	metrics.ObserveGuideDurationMs(metrics.NowMillis() - started)
	telemetry.Info("guide.generated", map[string]any{
		"user_id":   userID,
		"role":      guide.GapReport.TargetRole,
		"readiness": guide.GapReport.OverallReadiness,
		"gaps":      len(guide.GapReport.SkillGaps),
	})
	return guide, nil
}

func (s *Service) generate(ctx context.Context, userID, role string) (Guide, error) {
	report, err := s.SkillGap(ctx, userID, role)
	if err != nil {
		return Guide{}, err
	}

	courseRecs, err := s.RecommendCourses(ctx, userID, CourseQuery{})
	if err != nil {
		return Guide{}, err
	}
	jobRecs, err := s.RecommendJobs(ctx, userID, JobQuery{})
	if err != nil {
		return Guide{}, err
	}

	ranked := make([]*match.Course, 0, len(courseRecs))
	for _, rec := range courseRecs {
		if course, ok := rec.Entity.(*match.Course); ok {
			ranked = append(ranked, course)
		}
	}

	roadmap := s.Scorer.BuildRoadmap(report, ranked)
	starters := s.Scorer.BuildStarterGoals(report)

	persisted, err := s.Goals.ReplaceStarterGoals(ctx, userID, starters)
	if err != nil {
		return Guide{}, err
	}

	return Guide{
		GapReport:   report,
		Courses:     courseRecs,
		Jobs:        jobRecs,
		Roadmap:     roadmap,
		Goals:       persisted,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
