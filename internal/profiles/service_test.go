package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-backend/internal/match"
)

func TestServiceSaveNormalizesSkills(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	profile := Profile{
		Skills: []match.Skill{
			{Name: "  React  "},
			{Name: "react", Category: match.CategoryTechnical},
			{Name: ""},
			{Name: "Spanish", Category: match.CategoryLanguage, Proficiency: match.ProficiencyExpert},
		},
	}

	saved, err := svc.Save(context.Background(), "user-1", profile)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved.Skills) != 2 {
		t.Fatalf("expected duplicate and empty skills dropped, got %d", len(saved.Skills))
	}
	first := saved.Skills[0]
	if first.Name != "React" {
		t.Fatalf("expected trimmed name, got %q", first.Name)
	}
	if first.Category != match.CategoryTechnical || first.Proficiency != match.ProficiencyBeginner {
		t.Fatalf("expected defaults applied, got %+v", first)
	}
	if first.Verification != match.VerificationUnverified {
		t.Fatalf("expected unverified default, got %q", first.Verification)
	}
}

func TestServiceSaveRejectsUnknownEnums(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []struct {
		name    string
		profile Profile
	}{
		{"bad_category", Profile{Skills: []match.Skill{{Name: "go", Category: "mystic"}}}},
		{"bad_proficiency", Profile{Skills: []match.Skill{{Name: "go", Proficiency: "wizard"}}}},
		{"bad_level", Profile{Level: "deity"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Save(context.Background(), "user-1", tc.profile); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestServiceSaveRejectsBadDates(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	end := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := Profile{Experience: []match.ExperienceEntry{{
		Company:   "Acme",
		StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	}}}
	if _, err := svc.Save(context.Background(), "user-1", profile); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted dates, got %v", err)
	}

	missing := Profile{Experience: []match.ExperienceEntry{{Company: "Acme"}}}
	if _, err := svc.Save(context.Background(), "user-1", missing); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing start date, got %v", err)
	}
}

func TestServiceSaveRejectsInvertedSalary(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	profile := Profile{DesiredSalary: &match.SalaryRange{Min: 90000, Max: 50000}}
	if _, err := svc.Save(context.Background(), "user-1", profile); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted salary, got %v", err)
	}
}

func TestServiceSnapshot(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	profile := Profile{
		Skills:     []match.Skill{{Name: "go"}},
		TargetRole: "Backend Developer",
		Location:   match.Location{City: "Austin"},
	}
	if _, err := svc.Save(context.Background(), "user-1", profile); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snapshot, err := svc.Snapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.TargetRole != "Backend Developer" {
		t.Fatalf("unexpected target role %q", snapshot.TargetRole)
	}
	if !snapshot.HasSkill("GO") {
		t.Fatalf("expected snapshot to carry skills")
	}
}

func TestServiceSnapshotNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.Snapshot(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if _, err := svc.Save(context.Background(), "user-1", Profile{TargetRole: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := svc.Delete(context.Background(), "user-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
