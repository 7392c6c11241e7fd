package profiles

import (
	"time"

	"career-backend/internal/match"
)

// Profile is a user's stored career profile. Field shapes are shared with
// the match engine so that a snapshot is a plain copy.
type Profile struct {
	UserID        string
	Skills        []match.Skill
	Experience    []match.ExperienceEntry
	Education     []match.EducationEntry
	Location      match.Location
	DesiredSalary *match.SalaryRange
	TargetRole    string
	Level         match.ExperienceLevel
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot builds the immutable view the match engine scores against.
// The engine never mutates it, so a shallow copy is enough.
func (p Profile) Snapshot() *match.Profile {
	return &match.Profile{
		Skills:        p.Skills,
		Experience:    p.Experience,
		Education:     p.Education,
		Location:      p.Location,
		DesiredSalary: p.DesiredSalary,
		TargetRole:    p.TargetRole,
		Level:         p.Level,
	}
}
