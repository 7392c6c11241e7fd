package goals

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the goal does not exist for this user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// Goal sources.
const (
	SourceStarter = "starter"
	SourceCustom  = "custom"
)

// Milestone is one checkable step inside a goal.
type Milestone struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Goal is a dated career goal owned by a user. Starter goals come out of
// career guide generation; custom goals are user-created.
type Goal struct {
	ID            string      `json:"id"`
	UserID        string      `json:"-"`
	Title         string      `json:"title"`
	Category      string      `json:"category"`
	Priority      string      `json:"priority,omitempty"`
	Source        string      `json:"source"`
	TargetDate    time.Time   `json:"targetDate"`
	Milestones    []Milestone `json:"milestones"`
	RelatedSkills []string    `json:"relatedSkillNames,omitempty"`
	Completed     bool        `json:"completed"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
