package guide

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"career-backend/internal/match"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/usage"
)

// Handler exposes recommendations, skill gap analysis and career guide
// generation over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches guide routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/recommendations/jobs", h.recommendJobs)
	rg.GET("/recommendations/courses", h.recommendCourses)
	rg.GET("/skill-gap", h.skillGap)
	rg.POST("/career-guide", h.generate)
}

func (h *Handler) recommendJobs(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	query := JobQuery{
		Industry: c.Query("industry"),
		City:     c.Query("city"),
		Limit:    queryInt(c, "limit"),
	}
	if remote, err := strconv.ParseBool(c.DefaultQuery("remote", "false")); err == nil {
		query.RemoteOnly = remote
	}

	recs, err := h.Svc.RecommendJobs(c.Request.Context(), userID, query)
	if err != nil {
		h.fail(c, err, "failed to recommend jobs")
		return
	}
	respond.OK(c, gin.H{"recommendations": toJobResponses(recs)})
}

func (h *Handler) recommendCourses(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	query := CourseQuery{
		Provider: c.Query("provider"),
		Limit:    queryInt(c, "limit"),
	}

	recs, err := h.Svc.RecommendCourses(c.Request.Context(), userID, query)
	if err != nil {
		h.fail(c, err, "failed to recommend courses")
		return
	}
	respond.OK(c, gin.H{"recommendations": toCourseResponses(recs)})
}

func (h *Handler) skillGap(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	report, err := h.Svc.SkillGap(c.Request.Context(), userID, c.Query("targetRole"))
	if err != nil {
		h.fail(c, err, "failed to analyze skill gap")
		return
	}
	respond.OK(c, report)
}

type generateRequest struct {
	TargetRole string `json:"targetRole"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}

	guide, err := h.Svc.Generate(c.Request.Context(), userID, req.TargetRole)
	if err != nil {
		switch {
		case errors.Is(err, usage.ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your career guide limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		default:
			h.fail(c, err, "failed to generate career guide")
		}
		return
	}

	respond.OK(c, gin.H{
		"skillGap":           guide.GapReport,
		"recommendedJobs":    toJobResponses(guide.Jobs),
		"recommendedCourses": toCourseResponses(guide.Courses),
		"roadmap":            guide.Roadmap,
		"starterGoals":       guide.Goals,
		"generatedAt":        guide.GeneratedAt,
	})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoProfile):
		respond.Error(c, http.StatusConflict, "profile_required", "save a profile before requesting recommendations", nil)
	case errors.Is(err, match.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func queryInt(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
