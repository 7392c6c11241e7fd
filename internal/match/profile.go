package match

import (
	"strings"
	"time"
)

// SkillCategory groups skills for display; it does not participate in matching identity.
type SkillCategory string

const (
	CategoryTechnical     SkillCategory = "technical"
	CategorySoft          SkillCategory = "soft"
	CategoryLanguage      SkillCategory = "language"
	CategoryCertification SkillCategory = "certification"
)

// Proficiency is an ordered skill level.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Rank returns the ordering of a proficiency level, beginner first.
func (p Proficiency) Rank() int {
	switch p {
	case ProficiencyExpert:
		return 4
	case ProficiencyAdvanced:
		return 3
	case ProficiencyIntermediate:
		return 2
	case ProficiencyBeginner:
		return 1
	default:
		return 0
	}
}

// VerificationStatus tracks whether a skill claim has been verified.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
)

// Skill is a named capability on a profile. Identity for matching is the
// lower-cased name only.
type Skill struct {
	Name         string             `json:"name"`
	Category     SkillCategory      `json:"category"`
	Proficiency  Proficiency        `json:"proficiencyLevel"`
	Verification VerificationStatus `json:"verificationStatus"`
}

// ExperienceEntry is a single position held. A nil EndDate means ongoing.
type ExperienceEntry struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
}

const hoursPerYear = 365.25 * 24

// TenureYears returns the entry duration in years, using now for ongoing entries.
func (e ExperienceEntry) TenureYears(now time.Time) float64 {
	end := now
	if e.EndDate != nil {
		end = *e.EndDate
	}
	if !end.After(e.StartDate) {
		return 0
	}
	return end.Sub(e.StartDate).Hours() / hoursPerYear
}

// EducationEntry is a completed or ongoing degree.
type EducationEntry struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// Education levels, ordered. Derived from free-text degree names.
const (
	EducationNone       = 0
	EducationHighSchool = 1
	EducationAssociate  = 2
	EducationBachelor   = 3
	EducationMaster     = 4
	EducationDoctorate  = 5
)

var degreeSignals = []struct {
	substrings []string
	level      int
}{
	{[]string{"phd", "ph.d", "doctor"}, EducationDoctorate},
	{[]string{"master", "mba", "m.s", "msc"}, EducationMaster},
	{[]string{"bachelor", "b.s", "bsc", "b.a"}, EducationBachelor},
	{[]string{"associate"}, EducationAssociate},
	{[]string{"high school", "diploma", "ged"}, EducationHighSchool},
}

// DegreeLevel inspects free-text degree names for a level signal.
// Unrecognized text counts as high school so that having any education
// entry still outranks having none.
func DegreeLevel(degree string) int {
	lower := strings.ToLower(degree)
	for _, sig := range degreeSignals {
		for _, sub := range sig.substrings {
			if strings.Contains(lower, sub) {
				return sig.level
			}
		}
	}
	return EducationHighSchool
}

// Location is where a profile owner lives and whether they prefer remote work.
type Location struct {
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	RemotePreferred bool   `json:"isRemotePreferred"`
}

// SalaryRange is a desired or offered compensation band.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// ExperienceLevel is a coarse seniority bucket.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// Profile is the normalized snapshot of a user the engine scores against.
// The engine never mutates it.
type Profile struct {
	Skills        []Skill           `json:"skills"`
	Experience    []ExperienceEntry `json:"experience"`
	Education     []EducationEntry  `json:"education"`
	Location      Location          `json:"location"`
	DesiredSalary *SalaryRange      `json:"desiredSalaryRange,omitempty"`
	TargetRole    string            `json:"targetJobTitle,omitempty"`
	Level         ExperienceLevel   `json:"experienceLevel,omitempty"`
}

// TotalExperienceYears sums tenure across all experience entries.
func (p *Profile) TotalExperienceYears(now time.Time) float64 {
	var total float64
	for _, e := range p.Experience {
		total += e.TenureYears(now)
	}
	return total
}

// EducationLevel returns the highest degree level across education entries,
// or EducationNone when the profile has no education at all.
func (p *Profile) EducationLevel() int {
	if len(p.Education) == 0 {
		return EducationNone
	}
	highest := EducationNone
	for _, e := range p.Education {
		if lvl := DegreeLevel(e.Degree); lvl > highest {
			highest = lvl
		}
	}
	return highest
}

// HasSkill reports whether the profile lists the named skill,
// case-insensitively and regardless of proficiency.
func (p *Profile) HasSkill(name string) bool {
	_, ok := p.skillSet()[normalizeSkillName(name)]
	return ok
}

func (p *Profile) skillSet() map[string]Skill {
	set := make(map[string]Skill, len(p.Skills))
	for _, s := range p.Skills {
		key := normalizeSkillName(s.Name)
		if key == "" {
			continue
		}
		if _, exists := set[key]; !exists {
			set[key] = s
		}
	}
	return set
}

func normalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
