package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. The profile document lives in a
// single jsonb column keyed by user id.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	payload, err := json.Marshal(profile.Snapshot())
	if err != nil {
		return err
	}
	const query = `
INSERT INTO profiles (user_id, data, created_at, updated_at)
VALUES ($1, $2::jsonb, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  data = EXCLUDED.data,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, profile.UserID, payload)
	return err
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, data, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var (
		profile   Profile
		payload   []byte
		updatedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&payload,
		&profile.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	} else {
		profile.UpdatedAt = time.Now().UTC()
	}
	if err := unmarshalProfile(payload, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func unmarshalProfile(payload []byte, profile *Profile) error {
	if len(payload) == 0 {
		return nil
	}
	snapshot := profile.Snapshot()
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return err
	}
	profile.Skills = snapshot.Skills
	profile.Experience = snapshot.Experience
	profile.Education = snapshot.Education
	profile.Location = snapshot.Location
	profile.DesiredSalary = snapshot.DesiredSalary
	profile.TargetRole = snapshot.TargetRole
	profile.Level = snapshot.Level
	return nil
}
