package profiles

import (
	"time"

	"career-backend/internal/match"
)

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	Skills        []match.Skill           `json:"skills"`
	Experience    []match.ExperienceEntry `json:"experience"`
	Education     []match.EducationEntry  `json:"education"`
	Location      match.Location          `json:"location"`
	DesiredSalary *match.SalaryRange      `json:"desiredSalaryRange,omitempty"`
	TargetRole    string                  `json:"targetJobTitle,omitempty"`
	Level         match.ExperienceLevel   `json:"experienceLevel,omitempty"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

// ProfileRequest is the inbound shape for saving a profile.
type ProfileRequest struct {
	Skills        []match.Skill           `json:"skills"`
	Experience    []match.ExperienceEntry `json:"experience"`
	Education     []match.EducationEntry  `json:"education"`
	Location      match.Location          `json:"location"`
	DesiredSalary *match.SalaryRange      `json:"desiredSalaryRange,omitempty"`
	TargetRole    string                  `json:"targetJobTitle,omitempty"`
	Level         match.ExperienceLevel   `json:"experienceLevel,omitempty"`
}

func (r ProfileRequest) toModel() Profile {
	return Profile{
		Skills:        r.Skills,
		Experience:    r.Experience,
		Education:     r.Education,
		Location:      r.Location,
		DesiredSalary: r.DesiredSalary,
		TargetRole:    r.TargetRole,
		Level:         r.Level,
	}
}

func toResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		Skills:        emptyIfNilSkills(p.Skills),
		Experience:    p.Experience,
		Education:     p.Education,
		Location:      p.Location,
		DesiredSalary: p.DesiredSalary,
		TargetRole:    p.TargetRole,
		Level:         p.Level,
		UpdatedAt:     p.UpdatedAt,
	}
}

func emptyIfNilSkills(skills []match.Skill) []match.Skill {
	if skills == nil {
		return []match.Skill{}
	}
	return skills
}
