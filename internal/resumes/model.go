package resumes

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the user has no stored resume.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// Resume is an uploaded resume owned by a user. ExtractedText is the plain
// text pulled out of the file at upload time and is what profile import
// parses.
type Resume struct {
	ID            string
	UserID        string
	FileName      string
	MimeType      string
	SizeBytes     int64
	StorageKey    string
	ExtractedText string
	ExtractedAt   *time.Time
	CreatedAt     time.Time
}
