package profiles

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the user has no stored profile.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists profiles, one per user.
type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByUser(ctx context.Context, userID string) (Profile, error)
	Delete(ctx context.Context, userID string) error
}
