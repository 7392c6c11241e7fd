package goals

import (
	"context"
	"fmt"
	"time"

	"career-backend/internal/match"
)

// Service contains business logic for goals.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ReplaceStarterGoals swaps out the user's starter goals with a fresh set
// from guide generation. Custom goals are untouched; completion state on
// regenerated starter goals is reset deliberately.
func (s *Service) ReplaceStarterGoals(ctx context.Context, userID string, starters []match.StarterGoal) ([]Goal, error) {
	if err := s.Repo.DeleteBySource(ctx, userID, SourceStarter); err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]Goal, 0, len(starters))
	for _, starter := range starters {
		milestones := make([]Milestone, 0, len(starter.Milestones))
		for _, title := range starter.Milestones {
			milestones = append(milestones, Milestone{Title: title})
		}
		goal := Goal{
			ID:            starter.ID,
			UserID:        userID,
			Title:         starter.Title,
			Category:      starter.Category,
			Priority:      starter.Priority,
			Source:        SourceStarter,
			TargetDate:    starter.TargetDate,
			Milestones:    milestones,
			RelatedSkills: starter.RelatedSkills,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.Repo.Upsert(ctx, goal); err != nil {
			return nil, err
		}
		out = append(out, goal)
	}
	return out, nil
}

// List returns the user's goals ordered by target date.
func (s *Service) List(ctx context.Context, userID string) ([]Goal, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Patch carries the mutable fields of a goal. Nil fields are left alone.
type Patch struct {
	Completed      *bool
	MilestoneIndex *int
	MilestoneDone  *bool
	Title          *string
	TargetDate     *time.Time
}

// Update applies a patch to one goal. Checking the last open milestone does
// not implicitly complete the goal; completion is an explicit flag.
func (s *Service) Update(ctx context.Context, userID, goalID string, patch Patch) (Goal, error) {
	goal, err := s.Repo.GetByID(ctx, userID, goalID)
	if err != nil {
		return Goal{}, err
	}

	if patch.MilestoneIndex != nil {
		idx := *patch.MilestoneIndex
		if idx < 0 || idx >= len(goal.Milestones) {
			return Goal{}, fmt.Errorf("%w: milestone index %d out of range", ErrInvalidInput, idx)
		}
		done := true
		if patch.MilestoneDone != nil {
			done = *patch.MilestoneDone
		}
		goal.Milestones[idx].Done = done
	}
	if patch.Completed != nil {
		goal.Completed = *patch.Completed
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return Goal{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		goal.Title = *patch.Title
	}
	if patch.TargetDate != nil {
		goal.TargetDate = *patch.TargetDate
	}
	goal.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, goal); err != nil {
		return Goal{}, err
	}
	return goal, nil
}

// DeleteAllForUser removes all goals for a user.
func (s *Service) DeleteAllForUser(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUser(ctx, userID)
}
