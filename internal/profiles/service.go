package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-backend/internal/match"
)

// Service validates and persists profiles and produces engine snapshots.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save normalizes and stores the profile for a user.
func (s *Service) Save(ctx context.Context, userID string, profile Profile) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	profile.UserID = userID
	normalized, err := normalize(profile)
	if err != nil {
		return Profile{}, err
	}
	if err := s.Repo.Upsert(ctx, normalized); err != nil {
		return Profile{}, err
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Get returns the stored profile for a user.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Snapshot loads a profile and returns the engine view of it.
func (s *Service) Snapshot(ctx context.Context, userID string) (*match.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.Snapshot(), nil
}

// Delete removes the stored profile for a user.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	return s.Repo.Delete(ctx, userID)
}

var validCategories = map[match.SkillCategory]bool{
	match.CategoryTechnical:     true,
	match.CategorySoft:          true,
	match.CategoryLanguage:      true,
	match.CategoryCertification: true,
}

var validProficiencies = map[match.Proficiency]bool{
	match.ProficiencyBeginner:     true,
	match.ProficiencyIntermediate: true,
	match.ProficiencyAdvanced:     true,
	match.ProficiencyExpert:       true,
}

var validLevels = map[match.ExperienceLevel]bool{
	match.LevelEntry:     true,
	match.LevelMid:       true,
	match.LevelSenior:    true,
	match.LevelExecutive: true,
}

// normalize trims free text, drops empty or duplicate skills, defaults
// unset enum fields, and rejects unknown enum values.
func normalize(profile Profile) (Profile, error) {
	seen := make(map[string]bool, len(profile.Skills))
	skills := make([]match.Skill, 0, len(profile.Skills))
	for i, skill := range profile.Skills {
		skill.Name = strings.TrimSpace(skill.Name)
		if skill.Name == "" {
			continue
		}
		key := strings.ToLower(skill.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		if skill.Category == "" {
			skill.Category = match.CategoryTechnical
		}
		if !validCategories[skill.Category] {
			return Profile{}, fmt.Errorf("%w: skills[%d] has unknown category %q", ErrInvalidInput, i, skill.Category)
		}
		if skill.Proficiency == "" {
			skill.Proficiency = match.ProficiencyBeginner
		}
		if !validProficiencies[skill.Proficiency] {
			return Profile{}, fmt.Errorf("%w: skills[%d] has unknown proficiency %q", ErrInvalidInput, i, skill.Proficiency)
		}
		if skill.Verification == "" {
			skill.Verification = match.VerificationUnverified
		}
		skills = append(skills, skill)
	}
	profile.Skills = skills

	for i, exp := range profile.Experience {
		if exp.StartDate.IsZero() {
			return Profile{}, fmt.Errorf("%w: experience[%d] is missing a start date", ErrInvalidInput, i)
		}
		if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
			return Profile{}, fmt.Errorf("%w: experience[%d] ends before it starts", ErrInvalidInput, i)
		}
		profile.Experience[i].Company = strings.TrimSpace(exp.Company)
		profile.Experience[i].Position = strings.TrimSpace(exp.Position)
	}

	for i, edu := range profile.Education {
		profile.Education[i].Institution = strings.TrimSpace(edu.Institution)
		profile.Education[i].Degree = strings.TrimSpace(edu.Degree)
		profile.Education[i].Field = strings.TrimSpace(edu.Field)
	}

	if profile.DesiredSalary != nil {
		ds := profile.DesiredSalary
		if ds.Min < 0 || (ds.Max > 0 && ds.Max < ds.Min) {
			return Profile{}, fmt.Errorf("%w: desired salary range is inverted", ErrInvalidInput)
		}
	}

	profile.TargetRole = strings.TrimSpace(profile.TargetRole)
	if profile.Level != "" && !validLevels[profile.Level] {
		return Profile{}, fmt.Errorf("%w: unknown experience level %q", ErrInvalidInput, profile.Level)
	}

	profile.Location.City = strings.TrimSpace(profile.Location.City)
	profile.Location.State = strings.TrimSpace(profile.Location.State)
	profile.Location.Country = strings.TrimSpace(profile.Location.Country)

	return profile, nil
}
