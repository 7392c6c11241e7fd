package match

// Domain identifies which kind of catalog entity is being scored.
type Domain string

const (
	DomainJob    Domain = "job"
	DomainCourse Domain = "course"
)

// Entity is a catalog item the engine can score against a profile.
type Entity interface {
	EntityDomain() Domain
}

// SkillPriority weights a required skill inside a job posting or role template.
type SkillPriority string

const (
	PriorityLow    SkillPriority = "low"
	PriorityMedium SkillPriority = "medium"
	PriorityHigh   SkillPriority = "high"
)

// Rank orders priorities, high first.
func (p SkillPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// RequiredSkill is a job requirement with a priority.
type RequiredSkill struct {
	Name     string        `json:"name"`
	Priority SkillPriority `json:"priority"`
}

// JobLocation is where a job is based and whether it is remote.
type JobLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Remote  bool   `json:"isRemote"`
}

// Job is a posting normalized for scoring.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Industry        string          `json:"industry,omitempty"`
	RequiredSkills  []RequiredSkill `json:"requiredSkills"`
	PreferredSkills []string        `json:"preferredSkills,omitempty"`
	MinimumYears    float64         `json:"minimumYears,omitempty"`
	MinimumDegree   string          `json:"minimumDegree,omitempty"`
	Salary          *SalaryRange    `json:"salary,omitempty"`
	Location        JobLocation     `json:"location"`
}

// EntityDomain implements Entity.
func (*Job) EntityDomain() Domain { return DomainJob }

// RequiredLevel resolves the posting's minimum degree text to an education level.
// No stated requirement means no constraint.
func (j *Job) RequiredLevel() int {
	if j.MinimumDegree == "" {
		return EducationNone
	}
	return DegreeLevel(j.MinimumDegree)
}

// TaughtSkill is a skill a course teaches at a given level.
type TaughtSkill struct {
	Name  string      `json:"name"`
	Level Proficiency `json:"level,omitempty"`
}

// Course is a catalog course normalized for scoring.
type Course struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Provider       string        `json:"provider,omitempty"`
	SkillsTaught   []TaughtSkill `json:"skillsTaught"`
	CareerPaths    []string      `json:"careerPaths,omitempty"`
	JobRoles       []string      `json:"jobRoles,omitempty"`
	QualityScore   float64       `json:"qualityScore"` // 0-10
	Enrollment     int           `json:"enrollment,omitempty"`
	Rating         float64       `json:"rating,omitempty"`         // 0-5
	CompletionRate float64       `json:"completionRate,omitempty"` // 0-1
}

// EntityDomain implements Entity.
func (*Course) EntityDomain() Domain { return DomainCourse }

// popularityEnrollmentCap is where normalized enrollment saturates.
const popularityEnrollmentCap = 10000

// PopularityScore blends normalized enrollment, rating and completion rate
// into a 0-1 signal.
func (c *Course) PopularityScore() float64 {
	enrollment := float64(c.Enrollment) / popularityEnrollmentCap
	if enrollment > 1 {
		enrollment = 1
	}
	rating := c.Rating / 5
	if rating > 1 {
		rating = 1
	}
	completion := c.CompletionRate
	if completion > 1 {
		completion = 1
	}
	score := 0.4*enrollment + 0.4*rating + 0.2*completion
	if score < 0 {
		return 0
	}
	return score
}

// ServesRole reports whether the course lists the role among its career
// paths or job roles, case-insensitively.
func (c *Course) ServesRole(role string) bool {
	target := normalizeSkillName(role)
	if target == "" {
		return false
	}
	for _, p := range c.CareerPaths {
		if normalizeSkillName(p) == target {
			return true
		}
	}
	for _, r := range c.JobRoles {
		if normalizeSkillName(r) == target {
			return true
		}
	}
	return false
}
