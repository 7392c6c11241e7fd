package goals

import "context"

// Repo defines persistence operations for goals.
type Repo interface {
	Upsert(ctx context.Context, goal Goal) error
	GetByID(ctx context.Context, userID, goalID string) (Goal, error)
	ListByUser(ctx context.Context, userID string) ([]Goal, error)
	Update(ctx context.Context, goal Goal) error
	DeleteBySource(ctx context.Context, userID, source string) error
	DeleteByUser(ctx context.Context, userID string) error
}
