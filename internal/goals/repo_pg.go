package goals

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Milestones and related skills are
// stored as jsonb.
type PGRepo struct {
	DB *sql.DB
}

const goalColumns = `id, user_id, title, category, priority, source, target_date, milestones, related_skills, completed, created_at, updated_at`

func (r *PGRepo) Upsert(ctx context.Context, goal Goal) error {
	milestones, relatedSkills, err := marshalGoalLists(goal)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO goals (id, user_id, title, category, priority, source, target_date, milestones, related_skills, completed, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb, $10, $11, $12)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    category = EXCLUDED.category,
    priority = EXCLUDED.priority,
    target_date = EXCLUDED.target_date,
    milestones = EXCLUDED.milestones,
    related_skills = EXCLUDED.related_skills,
    completed = EXCLUDED.completed,
    updated_at = EXCLUDED.updated_at
WHERE goals.user_id = EXCLUDED.user_id`
	_, err = r.DB.ExecContext(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Category, goal.Priority, goal.Source,
		goal.TargetDate, milestones, relatedSkills, goal.Completed, goal.CreatedAt, goal.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, goalID string) (Goal, error) {
	const query = `
SELECT ` + goalColumns + `
FROM goals
WHERE user_id = $1 AND id = $2`
	goal, err := scanGoal(r.DB.QueryRowContext(ctx, query, userID, goalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Goal{}, ErrNotFound
		}
		return Goal{}, err
	}
	return goal, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Goal, error) {
	const query = `
SELECT ` + goalColumns + `
FROM goals
WHERE user_id = $1
ORDER BY target_date, id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, goal)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, goal Goal) error {
	milestones, relatedSkills, err := marshalGoalLists(goal)
	if err != nil {
		return err
	}
	const query = `
UPDATE goals
SET title = $1, category = $2, priority = $3, target_date = $4,
    milestones = $5::jsonb, related_skills = $6::jsonb, completed = $7, updated_at = $8
WHERE user_id = $9 AND id = $10`
	res, err := r.DB.ExecContext(ctx, query,
		goal.Title, goal.Category, goal.Priority, goal.TargetDate,
		milestones, relatedSkills, goal.Completed, goal.UpdatedAt,
		goal.UserID, goal.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) DeleteBySource(ctx context.Context, userID, source string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM goals WHERE user_id = $1 AND source = $2`, userID, source)
	return err
}

func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM goals WHERE user_id = $1`, userID)
	return err
}

func marshalGoalLists(goal Goal) ([]byte, []byte, error) {
	milestones := goal.Milestones
	if milestones == nil {
		milestones = []Milestone{}
	}
	ms, err := json.Marshal(milestones)
	if err != nil {
		return nil, nil, err
	}
	relatedSkills := goal.RelatedSkills
	if relatedSkills == nil {
		relatedSkills = []string{}
	}
	rs, err := json.Marshal(relatedSkills)
	if err != nil {
		return nil, nil, err
	}
	return ms, rs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (Goal, error) {
	var goal Goal
	var priority sql.NullString
	var milestones, relatedSkills []byte
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Category,
		&priority,
		&goal.Source,
		&goal.TargetDate,
		&milestones,
		&relatedSkills,
		&goal.Completed,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return Goal{}, err
	}
	if priority.Valid {
		goal.Priority = priority.String
	}
	if len(milestones) > 0 {
		if err := json.Unmarshal(milestones, &goal.Milestones); err != nil {
			return Goal{}, err
		}
	}
	if len(relatedSkills) > 0 {
		if err := json.Unmarshal(relatedSkills, &goal.RelatedSkills); err != nil {
			return Goal{}, err
		}
	}
	return goal, nil
}

var _ Repo = (*PGRepo)(nil)
