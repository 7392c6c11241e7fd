package profiles

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"career-backend/internal/match"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	profile := Profile{
		UserID:     "user-1",
		Skills:     []match.Skill{{Name: "go", Category: match.CategoryTechnical, Proficiency: match.ProficiencyAdvanced}},
		TargetRole: "Backend Developer",
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), profile); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	snapshot := match.Profile{
		Skills:     []match.Skill{{Name: "go"}},
		TargetRole: "Backend Developer",
		Location:   match.Location{City: "Austin"},
	}
	payload, err := json.Marshal(&snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"user_id", "data", "created_at", "updated_at"}).
		AddRow("user-1", payload, now, now)
	mock.ExpectQuery("SELECT user_id, data, created_at, updated_at").
		WithArgs("user-1").
		WillReturnRows(rows)

	profile, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if profile.TargetRole != "Backend Developer" {
		t.Fatalf("unexpected target role %q", profile.TargetRole)
	}
	if len(profile.Skills) != 1 || profile.Skills[0].Name != "go" {
		t.Fatalf("unexpected skills %+v", profile.Skills)
	}
	if profile.Location.City != "Austin" {
		t.Fatalf("unexpected city %q", profile.Location.City)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT user_id, data, created_at, updated_at").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "data", "created_at", "updated_at"}))

	if _, err := repo.GetByUser(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
