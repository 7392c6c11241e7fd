package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"career-backend/internal/goals"
	"career-backend/internal/profiles"
	"career-backend/internal/resumes"
	"career-backend/internal/usage"
)

// Service owns cross-feature account operations: claiming guest data after
// login and deleting everything a user owns.
type Service struct {
	DB       *sql.DB // nil in memory mode
	Profiles *profiles.Service
	Resumes  *resumes.Service
	Goals    *goals.Service
	Usage    *usage.Service

	ResumeRepo resumes.Repo
	GoalRepo   goals.Repo
}

// ClaimResult reports what moved from a guest identity.
type ClaimResult struct {
	MigratedResumes bool `json:"migratedResumes"`
	MigratedGoals   bool `json:"migratedGoals"`
	MigratedProfile bool `json:"migratedProfile"`
}

// ClaimGuest reassigns a guest identity's profile, resumes and goals to an
// authenticated user. The guest profile only moves when the authenticated
// user has none; existing data always wins.
func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if s.DB != nil {
		return s.claimWithTx(ctx, guestUserID, authedUserID)
	}
	return s.claimViaRepos(ctx, guestUserID, authedUserID)
}

func (s *Service) claimWithTx(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	var result ClaimResult

	res, err := tx.ExecContext(ctx, `UPDATE resumes SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		result.MigratedResumes = true
	}

	res, err = tx.ExecContext(ctx, `UPDATE goals SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		result.MigratedGoals = true
	}

	res, err = tx.ExecContext(ctx, `
UPDATE profiles SET user_id = $1
WHERE user_id = $2
  AND NOT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		result.MigratedProfile = true
	}

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return result, nil
}

// guestClaimer is implemented by memory repos that can move a guest's rows.
type guestClaimer interface {
	ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (bool, error)
}

func (s *Service) claimViaRepos(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	var result ClaimResult

	if claimer, ok := s.ResumeRepo.(guestClaimer); ok {
		moved, err := claimer.ClaimGuest(ctx, guestUserID, authedUserID)
		if err != nil {
			return ClaimResult{}, err
		}
		result.MigratedResumes = moved
	}
	if claimer, ok := s.GoalRepo.(guestClaimer); ok {
		moved, err := claimer.ClaimGuest(ctx, guestUserID, authedUserID)
		if err != nil {
			return ClaimResult{}, err
		}
		result.MigratedGoals = moved
	}

	// The profile moves only when the authenticated user has none.
	if _, err := s.Profiles.Get(ctx, authedUserID); errors.Is(err, profiles.ErrNotFound) {
		guestProfile, err := s.Profiles.Get(ctx, guestUserID)
		switch {
		case err == nil:
			guestProfile.UserID = authedUserID
			if _, err := s.Profiles.Save(ctx, authedUserID, guestProfile); err != nil {
				return ClaimResult{}, err
			}
			if err := s.Profiles.Delete(ctx, guestUserID); err != nil {
				return ClaimResult{}, err
			}
			result.MigratedProfile = true
		case errors.Is(err, profiles.ErrNotFound):
			// Nothing to move.
		default:
			return ClaimResult{}, err
		}
	}

	return result, nil
}

// DeleteAccount removes everything a user owns: profile, resumes, goals and
// usage state. Missing pieces are fine; deletion is idempotent.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}

	if err := s.Profiles.Delete(ctx, userID); err != nil && !errors.Is(err, profiles.ErrNotFound) {
		return err
	}
	if err := s.Resumes.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.Goals.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Usage.Reset(ctx, userID); err != nil {
		return err
	}
	return nil
}
