package match

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput indicates a caller contract violation: a nil profile or
// entity, or an unrecognized domain. Absent optional fields are never an
// error; they count as automatically satisfied constraints.
var ErrInvalidInput = errors.New("invalid input")

// MatchResult is the per-entity fit between a profile and a catalog entity.
// It is always recomputable and never treated as canonical state.
type MatchResult struct {
	Score         int      `json:"score"`
	MissingSkills []string `json:"missingSkills"`
	MatchReasons  []string `json:"matchReasons"`
}

// Scorer computes deterministic fit scores. It holds no mutable state and
// is safe for concurrent use. Now exists so tests and snapshot builders can
// pin the clock used for tenure; it defaults to time.Now.
type Scorer struct {
	Config Config
	Now    func() time.Time
}

// NewScorer builds a Scorer with the given config.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{Config: cfg, Now: time.Now}
}

func (s *Scorer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Score computes the fit between a profile and any catalog entity.
func (s *Scorer) Score(p *Profile, e Entity) (MatchResult, error) {
	if p == nil {
		return MatchResult{}, fmt.Errorf("%w: nil profile", ErrInvalidInput)
	}
	switch v := e.(type) {
	case *Job:
		if v == nil {
			return MatchResult{}, fmt.Errorf("%w: nil entity", ErrInvalidInput)
		}
		return s.ScoreJob(p, v)
	case *Course:
		if v == nil {
			return MatchResult{}, fmt.Errorf("%w: nil entity", ErrInvalidInput)
		}
		return s.ScoreCourse(p, v)
	case nil:
		return MatchResult{}, fmt.Errorf("%w: nil entity", ErrInvalidInput)
	default:
		return MatchResult{}, fmt.Errorf("%w: unrecognized domain %q", ErrInvalidInput, e.EntityDomain())
	}
}

// ScoreJob computes the weighted 0-100 fit between a profile and a job.
func (s *Scorer) ScoreJob(p *Profile, j *Job) (MatchResult, error) {
	if p == nil || j == nil {
		return MatchResult{}, fmt.Errorf("%w: nil profile or job", ErrInvalidInput)
	}

	skills, matched, missing := s.jobSkillsSubscore(p, j)
	experience, meetsExperience := s.experienceSubscore(p, j)
	location := s.locationSubscore(p, j)
	salary, salaryConstrained := s.salarySubscore(p, j)
	education := s.educationSubscore(p, j)

	w := s.Config.Job
	composite := w.Skills*skills +
		w.Experience*experience +
		w.Location*location +
		w.Salary*salary +
		w.Education*education

	reasons := make([]string, 0, 4)
	reasons = append(reasons, skillsReason(matched, len(j.RequiredSkills)))
	reasons = append(reasons, experienceReason(j.MinimumYears, meetsExperience))
	reasons = append(reasons, locationReason(p, j))
	if salaryConstrained {
		reasons = append(reasons, salaryReason(salary))
	}

	return MatchResult{
		Score:         clampScore(int(math.Round(composite * 100))),
		MissingSkills: missing,
		MatchReasons:  reasons,
	}, nil
}

// ScoreCourse computes the weighted 0-100 fit between a profile and a course.
func (s *Scorer) ScoreCourse(p *Profile, c *Course) (MatchResult, error) {
	if p == nil || c == nil {
		return MatchResult{}, fmt.Errorf("%w: nil profile or course", ErrInvalidInput)
	}

	overlap, newSkills, missing := s.courseSkillsSubscore(p, c)

	career := 0.0
	if c.ServesRole(p.TargetRole) {
		career = 1
	}

	quality := c.QualityScore / 10
	if quality > 1 {
		quality = 1
	}
	if quality < 0 {
		quality = 0
	}

	w := s.Config.Course
	composite := w.SkillsTaught*overlap +
		w.CareerPath*career +
		w.Quality*quality +
		w.Popularity*c.PopularityScore()

	reasons := make([]string, 0, 3)
	if newSkills > 0 {
		reasons = append(reasons, fmt.Sprintf("Teaches %d skills you don't have yet", newSkills))
	} else {
		reasons = append(reasons, "Covers skills you already have")
	}
	if career == 1 {
		reasons = append(reasons, fmt.Sprintf("Aligned with your %s career path", p.TargetRole))
	} else {
		reasons = append(reasons, "Not tied to your stated career path")
	}
	reasons = append(reasons, fmt.Sprintf("Course quality rated %.1f/10", c.QualityScore))

	return MatchResult{
		Score:         clampScore(int(math.Round(composite * 100))),
		MissingSkills: missing,
		MatchReasons:  reasons,
	}, nil
}

// jobSkillsSubscore returns matched/required ratio, matched count and the
// missing required skill names. An empty required list earns full credit.
func (s *Scorer) jobSkillsSubscore(p *Profile, j *Job) (float64, int, []string) {
	if len(j.RequiredSkills) == 0 {
		return 1, 0, nil
	}
	have := p.skillSet()
	matched := 0
	missing := make([]string, 0, len(j.RequiredSkills))
	for _, req := range j.RequiredSkills {
		if _, ok := have[normalizeSkillName(req.Name)]; ok {
			matched++
			continue
		}
		missing = append(missing, req.Name)
	}
	return float64(matched) / float64(len(j.RequiredSkills)), matched, missing
}

func (s *Scorer) courseSkillsSubscore(p *Profile, c *Course) (float64, int, []string) {
	if len(c.SkillsTaught) == 0 {
		return 1, 0, nil
	}
	have := p.skillSet()
	matched := 0
	missing := make([]string, 0, len(c.SkillsTaught))
	for _, taught := range c.SkillsTaught {
		if _, ok := have[normalizeSkillName(taught.Name)]; ok {
			matched++
			continue
		}
		missing = append(missing, taught.Name)
	}
	return float64(matched) / float64(len(c.SkillsTaught)), len(missing), missing
}

func (s *Scorer) experienceSubscore(p *Profile, j *Job) (float64, bool) {
	if j.MinimumYears <= 0 {
		return 1, true
	}
	tenure := p.TotalExperienceYears(s.now())
	if tenure >= j.MinimumYears {
		return 1, true
	}
	if tenure <= 0 {
		return 0, false
	}
	return tenure / j.MinimumYears, false
}

func (s *Scorer) locationSubscore(p *Profile, j *Job) float64 {
	if j.Location.Remote || j.Location.City == "" {
		return 1
	}
	if equalFold(p.Location.City, j.Location.City) {
		return 1
	}
	// Partial credit: proximity and relocation willingness are unknown.
	return s.Config.LocationMismatchCredit
}

func (s *Scorer) salarySubscore(p *Profile, j *Job) (float64, bool) {
	if p.DesiredSalary == nil || p.DesiredSalary.Min <= 0 {
		return 1, false
	}
	if j.Salary == nil {
		return 1, false
	}
	desired := float64(p.DesiredSalary.Min)
	offered := float64(j.Salary.Min)
	if offered >= desired {
		return 1, true
	}
	if offered <= 0 {
		return 0, true
	}
	return offered / desired, true
}

func (s *Scorer) educationSubscore(p *Profile, j *Job) float64 {
	required := j.RequiredLevel()
	if required == EducationNone || p.EducationLevel() >= required {
		return 1
	}
	// Education is a soft signal; falling short is never disqualifying.
	return s.Config.EducationBelowBarCredit
}

func skillsReason(matched, required int) string {
	if required == 0 {
		return "No specific skills required"
	}
	return fmt.Sprintf("Matches %d of %d required skills", matched, required)
}

func experienceReason(minimumYears float64, meets bool) string {
	if minimumYears <= 0 {
		return "No minimum experience required"
	}
	if meets {
		return fmt.Sprintf("Meets the %.0f+ years experience requirement", minimumYears)
	}
	return fmt.Sprintf("Below the %.0f years experience requirement", minimumYears)
}

func locationReason(p *Profile, j *Job) string {
	switch {
	case j.Location.Remote:
		return "Remote role, works from anywhere"
	case j.Location.City == "":
		return "No location constraint"
	case equalFold(p.Location.City, j.Location.City):
		return fmt.Sprintf("Based in your city (%s)", j.Location.City)
	default:
		return fmt.Sprintf("Located in %s, outside your city", j.Location.City)
	}
}

func salaryReason(subscore float64) string {
	if subscore >= 1 {
		return "Salary meets your stated minimum"
	}
	return "Salary below your stated minimum"
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func equalFold(a, b string) bool {
	return normalizeSkillName(a) == normalizeSkillName(b)
}
