package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"career-backend/internal/match"
)

// PGRepo implements Repo using Postgres. Skill payloads live in jsonb; the
// columns used for prefiltering are promoted to real columns.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateJob(ctx context.Context, job match.Job) error {
	payload, err := json.Marshal(&job)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO jobs (id, title, company, industry, city, remote, data, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, now())`
	_, err = r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		nullableString(job.Industry),
		nullableString(job.Location.City),
		job.Location.Remote,
		payload,
	)
	return err
}

func (r *PGRepo) ListJobs(ctx context.Context, filter JobFilter) ([]match.Job, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT data FROM jobs`)

	var (
		clauses []string
		args    []any
	)
	if filter.Industry != "" {
		args = append(args, filter.Industry)
		clauses = append(clauses, fmt.Sprintf("lower(industry) = lower($%d)", len(args)))
	}
	if filter.RemoteOnly {
		clauses = append(clauses, "remote = true")
	}
	if filter.City != "" {
		args = append(args, filter.City)
		clauses = append(clauses, fmt.Sprintf("(remote = true OR lower(city) = lower($%d))", len(args)))
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY created_at, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT " + strconv.Itoa(filter.Limit))
	}

	rows, err := r.DB.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []match.Job
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var job match.Job
		if err := json.Unmarshal(payload, &job); err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) CreateCourse(ctx context.Context, course match.Course) error {
	payload, err := json.Marshal(&course)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO courses (id, title, provider, data, created_at)
VALUES ($1, $2, $3, $4::jsonb, now())`
	_, err = r.DB.ExecContext(ctx, query,
		course.ID,
		course.Title,
		nullableString(course.Provider),
		payload,
	)
	return err
}

func (r *PGRepo) ListCourses(ctx context.Context, filter CourseFilter) ([]match.Course, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT data FROM courses`)

	var (
		clauses []string
		args    []any
	)
	if filter.Provider != "" {
		args = append(args, filter.Provider)
		clauses = append(clauses, fmt.Sprintf("lower(provider) = lower($%d)", len(args)))
	}
	if filter.CareerPath != "" {
		args = append(args, filter.CareerPath)
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
  SELECT 1 FROM jsonb_array_elements_text(coalesce(data->'careerPaths', '[]'::jsonb) || coalesce(data->'jobRoles', '[]'::jsonb)) AS role
  WHERE lower(role) = lower($%d))`, len(args)))
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY created_at, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT " + strconv.Itoa(filter.Limit))
	}

	rows, err := r.DB.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []match.Course
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var course match.Course
		if err := json.Unmarshal(payload, &course); err != nil {
			return nil, err
		}
		out = append(out, course)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
