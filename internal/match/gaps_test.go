package match

import (
	"reflect"
	"testing"
)

type stubRegistry struct {
	templates map[string]RoleTemplate
	fallback  RoleTemplate
}

func (r stubRegistry) Template(role string) (RoleTemplate, bool) {
	t, ok := r.templates[role]
	return t, ok
}

func (r stubRegistry) Default() RoleTemplate { return r.fallback }

func frontendRegistry() stubRegistry {
	return stubRegistry{
		templates: map[string]RoleTemplate{
			"Frontend Developer": {
				Role: "Frontend Developer",
				Skills: []TemplateSkill{
					{Name: "react", Priority: PriorityHigh},
					{Name: "javascript", Priority: PriorityHigh},
					{Name: "css", Priority: PriorityMedium},
					{Name: "typescript", Priority: PriorityMedium},
				},
			},
		},
		fallback: RoleTemplate{
			Role: "Software Engineer",
			Skills: []TemplateSkill{
				{Name: "programming fundamentals"},
				{Name: "git"},
			},
		},
	}
}

func TestAnalyzeGapsFrontendScenario(t *testing.T) {
	s := newTestScorer()

	skills := []Skill{{Name: "react", Category: CategoryTechnical, Proficiency: ProficiencyAdvanced}}
	report := s.AnalyzeGaps(skills, "Frontend Developer", frontendRegistry())

	if report.TargetRole != "Frontend Developer" {
		t.Fatalf("expected target role Frontend Developer, got %q", report.TargetRole)
	}
	wantGaps := []SkillGap{
		{Name: "javascript", Priority: PriorityHigh},
		{Name: "css", Priority: PriorityMedium},
		{Name: "typescript", Priority: PriorityMedium},
	}
	if !reflect.DeepEqual(report.SkillGaps, wantGaps) {
		t.Fatalf("unexpected gaps: %+v", report.SkillGaps)
	}
	if !reflect.DeepEqual(report.Strengths, []string{"react"}) {
		t.Fatalf("unexpected strengths: %v", report.Strengths)
	}
	if report.OverallReadiness != 55 {
		t.Fatalf("expected readiness 55, got %d", report.OverallReadiness)
	}
	if !reflect.DeepEqual(report.PrioritySkills, wantGaps[:3]) {
		t.Fatalf("expected priority skills to be the first 3 gaps, got %+v", report.PrioritySkills)
	}
	if report.EstimatedMonths.Min != 6 || report.EstimatedMonths.Max != 9 {
		t.Fatalf("expected 6-9 months for 3 gaps, got %+v", report.EstimatedMonths)
	}
}

func TestAnalyzeGapsReadinessFloorsAtZero(t *testing.T) {
	s := newTestScorer()

	registry := stubRegistry{fallback: RoleTemplate{
		Role: "Platform Engineer",
		Skills: []TemplateSkill{
			{Name: "go"}, {Name: "kubernetes"}, {Name: "terraform"}, {Name: "aws"},
			{Name: "postgres"}, {Name: "kafka"}, {Name: "grpc"}, {Name: "linux"},
		},
	}}

	report := s.AnalyzeGaps(nil, "", registry)
	if report.OverallReadiness != 0 {
		t.Fatalf("expected readiness floor 0 for 8 gaps, got %d", report.OverallReadiness)
	}
	if len(report.SkillGaps) != 8 {
		t.Fatalf("expected all template entries as gaps, got %d", len(report.SkillGaps))
	}
}

func TestAnalyzeGapsReadinessDecreasesWithGapCount(t *testing.T) {
	s := newTestScorer()

	previous := 101
	for gaps := 0; gaps <= 8; gaps++ {
		skills := make([]TemplateSkill, gaps)
		for i := range skills {
			skills[i] = TemplateSkill{Name: "skill-" + string(rune('a'+i))}
		}
		registry := stubRegistry{fallback: RoleTemplate{Role: "Any", Skills: skills}}
		report := s.AnalyzeGaps(nil, "", registry)

		want := 100 - 15*gaps
		if want < 0 {
			want = 0
		}
		if report.OverallReadiness != want {
			t.Fatalf("gaps=%d: expected readiness %d, got %d", gaps, want, report.OverallReadiness)
		}
		if report.OverallReadiness > previous {
			t.Fatalf("readiness increased with more gaps")
		}
		previous = report.OverallReadiness
	}
}

func TestAnalyzeGapsUnknownRoleFallsBack(t *testing.T) {
	s := newTestScorer()

	report := s.AnalyzeGaps(nil, "Underwater Basket Weaver", frontendRegistry())
	if report.TargetRole != "Software Engineer" {
		t.Fatalf("expected fallback to default template, got %q", report.TargetRole)
	}
}

func TestAnalyzeGapsEmptyRoleUsesDefault(t *testing.T) {
	s := newTestScorer()

	report := s.AnalyzeGaps(nil, "", frontendRegistry())
	if report.TargetRole != "Software Engineer" {
		t.Fatalf("expected default template for empty role, got %q", report.TargetRole)
	}
}

func TestAnalyzeGapsExplicitPrioritySort(t *testing.T) {
	s := newTestScorer()

	registry := stubRegistry{fallback: RoleTemplate{
		Role: "Data Engineer",
		Skills: []TemplateSkill{
			{Name: "airflow", Priority: PriorityLow},
			{Name: "python", Priority: PriorityHigh},
			{Name: "sql", Priority: PriorityHigh},
			{Name: "spark", Priority: PriorityMedium},
		},
	}}

	report := s.AnalyzeGaps(nil, "", registry)
	got := gapNames(report.SkillGaps)
	want := []string{"python", "sql", "spark", "airflow"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected priority order %v, got %v", want, got)
	}
}

func TestAnalyzeGapsTemplateOrderPreservedWithoutPriorities(t *testing.T) {
	s := newTestScorer()

	registry := stubRegistry{fallback: RoleTemplate{
		Role:   "QA Engineer",
		Skills: []TemplateSkill{{Name: "selenium"}, {Name: "cypress"}, {Name: "api testing"}},
	}}

	report := s.AnalyzeGaps(nil, "", registry)
	got := gapNames(report.SkillGaps)
	want := []string{"selenium", "cypress", "api testing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected template order %v, got %v", want, got)
	}
}
