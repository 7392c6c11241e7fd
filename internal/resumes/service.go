package resumes

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"career-backend/internal/extract"
	"career-backend/internal/shared/storage/object"
	"career-backend/internal/shared/telemetry"
)

// Service contains business logic for resumes. Text extraction happens at
// upload time so profile import never has to touch the original file.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, repo Repo) *Service {
	return &Service{Store: store, Repo: repo}
}

// Upload saves the file to object storage, extracts its text and records the
// resume. Unsupported file types fail the upload.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, error) {
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, err
	}

	text, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		telemetry.Warn("resumes.extract_failed", map[string]any{
			"user_id": userID, "file": fileName, "error": err.Error(),
		})
		return Resume{}, fmt.Errorf("%w: could not extract text from %s", ErrInvalidInput, fileName)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		MimeType:      mimeType,
		SizeBytes:     size,
		StorageKey:    storageKey,
		ExtractedText: text,
		ExtractedAt:   &now,
		CreatedAt:     now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// CreateFromS3 records a resume whose bytes were uploaded directly to the
// object store, then extracts its text.
func (s *Service) CreateFromS3(ctx context.Context, userID, storageKey, fileName, contentType string, sizeBytes int64) (Resume, error) {
	text, err := extract.ExtractText(ctx, s.Store, storageKey, contentType, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: could not extract text from %s", ErrInvalidInput, fileName)
	}

	now := time.Now().UTC()
	resume := Resume{
		ID:            uuid.NewString(),
		UserID:        userID,
		FileName:      fileName,
		MimeType:      contentType,
		SizeBytes:     sizeBytes,
		StorageKey:    storageKey,
		ExtractedText: text,
		ExtractedAt:   &now,
		CreatedAt:     now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Current returns the latest resume for a user.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// CurrentText returns the extracted text of the user's latest resume,
// re-extracting from storage when the stored text is missing.
func (s *Service) CurrentText(ctx context.Context, userID string) (string, error) {
	resume, err := s.Current(ctx, userID)
	if err != nil {
		return "", err
	}
	if resume.ExtractedText != "" {
		return resume.ExtractedText, nil
	}

	text, err := extract.ExtractText(ctx, s.Store, resume.StorageKey, resume.MimeType, resume.FileName)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateText(ctx, userID, resume.ID, text, time.Now().UTC()); err != nil {
		return "", err
	}
	return text, nil
}

// List returns the user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// DeleteAllForUser removes all resume records for a user.
func (s *Service) DeleteAllForUser(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUser(ctx, userID)
}
