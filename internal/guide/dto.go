package guide

import "career-backend/internal/match"

// JobRecommendationResponse flattens a job recommendation for the API.
type JobRecommendationResponse struct {
	JobID         string   `json:"jobId"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Score         int      `json:"score"`
	MissingSkills []string `json:"missingSkills"`
	MatchReasons  []string `json:"matchReasons"`
}

// CourseRecommendationResponse flattens a course recommendation.
type CourseRecommendationResponse struct {
	CourseID      string   `json:"courseId"`
	Title         string   `json:"title"`
	Provider      string   `json:"provider,omitempty"`
	Score         int      `json:"score"`
	MissingSkills []string `json:"missingSkills"`
	MatchReasons  []string `json:"matchReasons"`
}

func toJobResponses(recs []match.Recommendation) []JobRecommendationResponse {
	out := make([]JobRecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		job, ok := rec.Entity.(*match.Job)
		if !ok {
			continue
		}
		out = append(out, JobRecommendationResponse{
			JobID:         job.ID,
			Title:         job.Title,
			Company:       job.Company,
			Score:         rec.AdjustedScore,
			MissingSkills: emptyIfNil(rec.Result.MissingSkills),
			MatchReasons:  emptyIfNil(rec.Result.MatchReasons),
		})
	}
	return out
}

func toCourseResponses(recs []match.Recommendation) []CourseRecommendationResponse {
	out := make([]CourseRecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		course, ok := rec.Entity.(*match.Course)
		if !ok {
			continue
		}
		out = append(out, CourseRecommendationResponse{
			CourseID:      course.ID,
			Title:         course.Title,
			Provider:      course.Provider,
			Score:         rec.AdjustedScore,
			MissingSkills: emptyIfNil(rec.Result.MissingSkills),
			MatchReasons:  emptyIfNil(rec.Result.MatchReasons),
		})
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
