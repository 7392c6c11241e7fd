package match

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CourseRef points a roadmap phase at a ranked course without embedding it.
type CourseRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider,omitempty"`
}

// Phase is one stage of a learning roadmap.
type Phase struct {
	Name        string      `json:"name"`
	FocusSkills []string    `json:"focusSkills"`
	Actions     []string    `json:"actions"`
	Courses     []CourseRef `json:"recommendedCourses"`
}

// Roadmap is a phased learning plan derived from a skill gap report.
// It always has exactly three phases.
type Roadmap struct {
	TargetRole string  `json:"targetRole"`
	Phases     []Phase `json:"phases"`
}

// StarterGoal is a concrete, dated first action derived from a gap report.
type StarterGoal struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	TargetDate    time.Time `json:"targetDate"`
	Milestones    []string  `json:"milestones"`
	RelatedSkills []string  `json:"relatedSkillNames"`
}

// Goal categories.
const (
	GoalCategoryLearning = "learning"
	GoalCategoryProject  = "project"
)

// BuildRoadmap turns a gap report and ranked courses into a three-phase
// plan: foundation, project application, job readiness. Each phase takes
// up to two courses, advancing a cursor so phases never share a course.
// Short gap lists are used as-is; nothing is padded.
func (s *Scorer) BuildRoadmap(report SkillGapReport, rankedCourses []*Course) Roadmap {
	foundation := gapNames(sliceGaps(report.SkillGaps, 2))
	application := gapNames(sliceGaps(report.SkillGaps, 3))

	cursor := 0
	next := func() []CourseRef {
		refs := make([]CourseRef, 0, s.Config.CoursesPerPhase)
		for len(refs) < s.Config.CoursesPerPhase && cursor < len(rankedCourses) {
			c := rankedCourses[cursor]
			cursor++
			if c == nil {
				continue
			}
			refs = append(refs, CourseRef{ID: c.ID, Title: c.Title, Provider: c.Provider})
		}
		return refs
	}

	role := report.TargetRole

	phases := []Phase{
		{
			Name:        "Foundation",
			FocusSkills: foundation,
			Actions:     foundationActions(foundation),
			Courses:     next(),
		},
		{
			Name:        "Project Application",
			FocusSkills: application,
			Actions:     applicationActions(application),
			Courses:     next(),
		},
		{
			Name:        "Job Readiness",
			FocusSkills: nil,
			Actions: []string{
				"Polish your resume and portfolio",
				fmt.Sprintf("Practice interview questions for %s roles", role),
				"Apply to openings that match your strongest skills",
			},
			Courses: next(),
		},
	}

	return Roadmap{TargetRole: role, Phases: phases}
}

// BuildStarterGoals derives exactly two dated goals from a gap report: a
// learning goal and a project goal. Target dates are offset from now by the
// configured day counts.
func (s *Scorer) BuildStarterGoals(report SkillGapReport) []StarterGoal {
	now := s.now()
	role := report.TargetRole
	priority := gapNames(report.PrioritySkills)

	courseTitle := fmt.Sprintf("Complete a course toward %s", role)
	projectTitle := fmt.Sprintf("Ship a small project for your %s portfolio", role)

	courseFocus := role
	if len(priority) > 0 {
		courseFocus = priority[0]
	}

	return []StarterGoal{
		{
			ID:         "goal-" + slugify(courseTitle),
			Title:      courseTitle,
			Category:   GoalCategoryLearning,
			Priority:   "high",
			TargetDate: now.AddDate(0, 0, s.Config.CourseGoalOffsetDays),
			Milestones: []string{
				fmt.Sprintf("Pick a course covering %s", courseFocus),
				"Finish half of the course material",
				"Complete the course and write up what you learned",
			},
			RelatedSkills: priority,
		},
		{
			ID:         "goal-" + slugify(projectTitle),
			Title:      projectTitle,
			Category:   GoalCategoryProject,
			Priority:   "medium",
			TargetDate: now.AddDate(0, 0, s.Config.ProjectGoalOffsetDays),
			Milestones: []string{
				"Define the project scope and pick a stack",
				"Build a working prototype",
				"Publish the project with a short writeup",
			},
			RelatedSkills: priority,
		},
	}
}

func sliceGaps(gaps []SkillGap, n int) []SkillGap {
	if n > len(gaps) {
		n = len(gaps)
	}
	return gaps[:n]
}

func gapNames(gaps []SkillGap) []string {
	out := make([]string, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, g.Name)
	}
	return out
}

func foundationActions(skills []string) []string {
	if len(skills) == 0 {
		return []string{
			"Review fundamentals for your target role",
			"Work through guided tutorials and exercises",
		}
	}
	return []string{
		fmt.Sprintf("Learn the fundamentals of %s", strings.Join(skills, " and ")),
		"Work through guided tutorials and exercises",
	}
}

func applicationActions(skills []string) []string {
	if len(skills) == 0 {
		return []string{
			"Build a portfolio project using your strongest skills",
			"Ask for code review or feedback from the community",
		}
	}
	return []string{
		fmt.Sprintf("Build a portfolio project applying %s", strings.Join(skills, ", ")),
		"Ask for code review or feedback from the community",
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
