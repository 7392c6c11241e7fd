package match

import "sort"

// Options tunes a Recommend call. A zero Limit falls back to the configured
// default; preferences are optional secondary filters applied as additive
// penalties, never hard exclusions.
type Options struct {
	Limit int

	// PreferredCity penalizes non-remote jobs based elsewhere.
	PreferredCity string

	// SalaryFloor penalizes jobs whose minimum salary falls below it.
	SalaryFloor int
}

// Recommendation pairs a scored entity with its match detail. AdjustedScore
// is Result.Score after secondary penalties; it is the ranking key.
type Recommendation struct {
	Entity        Entity      `json:"entity"`
	Result        MatchResult `json:"match"`
	AdjustedScore int         `json:"adjustedScore"`
}

// Recommend scores every entity against the profile, applies secondary
// penalty adjustments, and returns the list ranked by adjusted score.
// Entities with equal adjusted scores keep their input order. This is the
// only cross-entity step in the engine; scoring itself is entity-local.
func (s *Scorer) Recommend(p *Profile, entities []Entity, opts Options) ([]Recommendation, error) {
	if p == nil {
		return nil, ErrInvalidInput
	}

	out := make([]Recommendation, 0, len(entities))
	for _, e := range entities {
		result, err := s.Score(p, e)
		if err != nil {
			return nil, err
		}
		out = append(out, Recommendation{
			Entity:        e,
			Result:        result,
			AdjustedScore: s.adjust(result.Score, e, opts),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AdjustedScore > out[j].AdjustedScore
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = s.Config.DefaultLimit
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// adjust applies flat preference penalties after base scoring, flooring at 0.
func (s *Scorer) adjust(score int, e Entity, opts Options) int {
	job, ok := e.(*Job)
	if !ok {
		return score
	}
	if opts.PreferredCity != "" && !job.Location.Remote && !equalFold(job.Location.City, opts.PreferredCity) {
		score -= s.Config.LocationPenalty
	}
	if opts.SalaryFloor > 0 && job.Salary != nil && job.Salary.Min < opts.SalaryFloor {
		score -= s.Config.SalaryPenalty
	}
	if score < 0 {
		return 0
	}
	return score
}
