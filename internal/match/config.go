package match

// JobWeights are the factor weights for job scoring. They should sum to 1.
type JobWeights struct {
	Skills     float64
	Experience float64
	Location   float64
	Salary     float64
	Education  float64
}

// CourseWeights are the factor weights for course scoring. They should sum to 1.
type CourseWeights struct {
	SkillsTaught float64
	CareerPath   float64
	Quality      float64
	Popularity   float64
}

// Config carries every tunable constant in the engine. The values in
// DefaultConfig are heuristics, not validated business rules; callers may
// override them from configuration.
type Config struct {
	Job    JobWeights
	Course CourseWeights

	// Partial-credit subscores for soft signals.
	LocationMismatchCredit  float64
	EducationBelowBarCredit float64

	// Additive post-scoring penalties applied by Recommend, on the 0-100 scale.
	LocationPenalty int
	SalaryPenalty   int

	// Recommend returns at most this many entries when no limit is given.
	DefaultLimit int

	// Readiness lost per missing template skill.
	ReadinessDecayPerGap int

	// PrioritySkills keeps this many leading gaps.
	PrioritySkillCount int

	// Estimated learning time per gap, in months.
	MonthsPerGapMin int
	MonthsPerGapMax int

	// Starter goal target-date offsets, in days from now.
	CourseGoalOffsetDays  int
	ProjectGoalOffsetDays int

	// Courses assigned to each roadmap phase.
	CoursesPerPhase int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Job: JobWeights{
			Skills:     0.35,
			Experience: 0.25,
			Location:   0.15,
			Salary:     0.15,
			Education:  0.10,
		},
		Course: CourseWeights{
			SkillsTaught: 0.4,
			CareerPath:   0.3,
			Quality:      0.2,
			Popularity:   0.1,
		},
		LocationMismatchCredit:  0.3,
		EducationBelowBarCredit: 0.5,
		LocationPenalty:         15,
		SalaryPenalty:           10,
		DefaultLimit:            10,
		ReadinessDecayPerGap:    15,
		PrioritySkillCount:      3,
		MonthsPerGapMin:         2,
		MonthsPerGapMax:         3,
		CourseGoalOffsetDays:    21,
		ProjectGoalOffsetDays:   30,
		CoursesPerPhase:         2,
	}
}
