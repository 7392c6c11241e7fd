package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-backend/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(local.New(t.TempDir()), NewMemoryRepo())
}

func TestUploadExtractsText(t *testing.T) {
	svc := newTestService(t)

	body := "Skills: Go, SQL\nExperience\nBackend Engineer at Globex (2020 - 2024)"
	resume, err := svc.Upload(context.Background(), "user-1", "resume.txt", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if resume.ID == "" || resume.StorageKey == "" {
		t.Fatalf("resume = %+v", resume)
	}
	if !strings.Contains(resume.ExtractedText, "Backend Engineer") {
		t.Fatalf("extracted text = %q", resume.ExtractedText)
	}
	if resume.ExtractedAt == nil {
		t.Fatal("expected extractedAt to be set")
	}

	text, err := svc.CurrentText(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("CurrentText: %v", err)
	}
	if text != resume.ExtractedText {
		t.Fatalf("CurrentText = %q, want %q", text, resume.ExtractedText)
	}
}

func TestUploadRejectsEmptyFileName(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Upload(context.Background(), "user-1", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCurrentReturnsLatest(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Upload(context.Background(), "user-1", "old.txt", strings.NewReader("old resume")); err != nil {
		t.Fatalf("Upload old: %v", err)
	}
	if _, err := svc.Upload(context.Background(), "user-1", "new.txt", strings.NewReader("new resume")); err != nil {
		t.Fatalf("Upload new: %v", err)
	}

	current, err := svc.Current(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if current.FileName != "new.txt" {
		t.Fatalf("current = %q, want new.txt", current.FileName)
	}
}

func TestCurrentTextNoResume(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CurrentText(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirstAndDelete(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if _, err := svc.Upload(context.Background(), "user-1", name, strings.NewReader("resume "+name)); err != nil {
			t.Fatalf("Upload %s: %v", name, err)
		}
	}

	list, err := svc.List(context.Background(), "user-1", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].FileName != "c.txt" || list[1].FileName != "b.txt" {
		t.Fatalf("list = %+v", list)
	}

	if err := svc.DeleteAllForUser(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeleteAllForUser: %v", err)
	}
	if _, err := svc.Current(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
}
