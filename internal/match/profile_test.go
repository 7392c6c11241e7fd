package match

import (
	"testing"
	"time"
)

func TestDegreeLevel(t *testing.T) {
	cases := []struct {
		degree string
		want   int
	}{
		{"PhD in Computer Science", EducationDoctorate},
		{"Doctor of Philosophy", EducationDoctorate},
		{"Master of Science", EducationMaster},
		{"MBA", EducationMaster},
		{"Bachelor of Arts", EducationBachelor},
		{"B.S. Computer Science", EducationBachelor},
		{"Associate Degree", EducationAssociate},
		{"High School Diploma", EducationHighSchool},
		{"Bootcamp Certificate", EducationHighSchool},
	}
	for _, tc := range cases {
		t.Run(tc.degree, func(t *testing.T) {
			if got := DegreeLevel(tc.degree); got != tc.want {
				t.Fatalf("DegreeLevel(%q) = %d, want %d", tc.degree, got, tc.want)
			}
		})
	}
}

func TestProfileEducationLevel(t *testing.T) {
	empty := &Profile{}
	if got := empty.EducationLevel(); got != EducationNone {
		t.Fatalf("expected none for empty education, got %d", got)
	}

	p := &Profile{Education: []EducationEntry{
		{Degree: "Bachelor of Science"},
		{Degree: "Master of Engineering"},
	}}
	if got := p.EducationLevel(); got != EducationMaster {
		t.Fatalf("expected highest degree to win, got %d", got)
	}

	unrecognized := &Profile{Education: []EducationEntry{{Degree: "Certificate of Attendance"}}}
	if got := unrecognized.EducationLevel(); got != EducationHighSchool {
		t.Fatalf("expected high school default with entries present, got %d", got)
	}
}

func TestExperienceTenure(t *testing.T) {
	start := testNow.AddDate(-2, 0, 0)
	end := testNow.AddDate(-1, 0, 0)

	closed := ExperienceEntry{StartDate: start, EndDate: &end}
	if got := closed.TenureYears(testNow); got < 0.99 || got > 1.01 {
		t.Fatalf("expected ~1 year for closed entry, got %v", got)
	}

	ongoing := ExperienceEntry{StartDate: start}
	if got := ongoing.TenureYears(testNow); got < 1.99 || got > 2.01 {
		t.Fatalf("expected ~2 years for ongoing entry, got %v", got)
	}

	inverted := ExperienceEntry{StartDate: testNow, EndDate: &start}
	if got := inverted.TenureYears(testNow); got != 0 {
		t.Fatalf("expected 0 for inverted dates, got %v", got)
	}
}

func TestProfileTotalExperienceYears(t *testing.T) {
	endA := testNow.AddDate(-3, 0, 0)
	p := &Profile{Experience: []ExperienceEntry{
		{StartDate: testNow.AddDate(-5, 0, 0), EndDate: &endA},
		{StartDate: testNow.AddDate(-1, 0, 0)},
	}}
	total := p.TotalExperienceYears(testNow)
	if total < 2.99 || total > 3.01 {
		t.Fatalf("expected ~3 years total, got %v", total)
	}
}

func TestProfileHasSkill(t *testing.T) {
	p := profileWithSkills("React", "  Go  ")
	if !p.HasSkill("react") {
		t.Fatalf("expected case-insensitive match for react")
	}
	if !p.HasSkill("GO") {
		t.Fatalf("expected trimmed match for GO")
	}
	if p.HasSkill("rust") {
		t.Fatalf("did not expect rust")
	}
	if p.HasSkill("") {
		t.Fatalf("empty name must not match")
	}
}

func TestScorerDefaultClock(t *testing.T) {
	s := NewScorer(DefaultConfig())
	s.Now = nil
	before := time.Now()
	if got := s.now(); got.Before(before) {
		t.Fatalf("expected wall clock fallback")
	}
}
