package goals

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Goal // userID -> goalID -> goal
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]Goal)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, goal Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byID, ok := r.data[goal.UserID]
	if !ok {
		byID = make(map[string]Goal)
		r.data[goal.UserID] = byID
	}
	byID[goal.ID] = goal
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, goalID string) (Goal, error) {
	if err := ctx.Err(); err != nil {
		return Goal{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	goal, ok := r.data[userID][goalID]
	if !ok {
		return Goal{}, ErrNotFound
	}
	return goal, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Goal, 0, len(r.data[userID]))
	for _, goal := range r.data[userID] {
		out = append(out, goal)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TargetDate.Equal(out[j].TargetDate) {
			return out[i].TargetDate.Before(out[j].TargetDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, goal Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := r.data[goal.UserID]
	if _, ok := byID[goal.ID]; !ok {
		return ErrNotFound
	}
	byID[goal.ID] = goal
	return nil
}

func (r *MemoryRepo) DeleteBySource(ctx context.Context, userID, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, goal := range r.data[userID] {
		if goal.Source == source {
			delete(r.data[userID], id)
		}
	}
	return nil
}

// ClaimGuest moves a guest user's goals to an authenticated user.
func (r *MemoryRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fromGuest := r.data[guestUserID]
	if len(fromGuest) == 0 {
		return false, nil
	}
	byID, ok := r.data[authedUserID]
	if !ok {
		byID = make(map[string]Goal)
		r.data[authedUserID] = byID
	}
	for id, goal := range fromGuest {
		goal.UserID = authedUserID
		byID[id] = goal
	}
	delete(r.data, guestUserID)
	return true, nil
}

func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}
