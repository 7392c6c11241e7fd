package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"career-backend/internal/match"
	"career-backend/internal/shared/server/respond"
)

// Handler exposes the job and course catalog over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.listJobs)
	rg.POST("/jobs", h.createJob)
	rg.GET("/courses", h.listCourses)
	rg.POST("/courses", h.createCourse)
}

func (h *Handler) listJobs(c *gin.Context) {
	filter := JobFilter{
		Industry: c.Query("industry"),
		City:     c.Query("city"),
		Limit:    queryInt(c, "limit"),
	}
	if remote, err := strconv.ParseBool(c.DefaultQuery("remote", "false")); err == nil {
		filter.RemoteOnly = remote
	}

	jobs, err := h.Svc.ListJobs(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	if jobs == nil {
		jobs = []match.Job{}
	}
	respond.OK(c, gin.H{"jobs": jobs})
}

func (h *Handler) createJob(c *gin.Context) {
	var job match.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	created, err := h.Svc.CreateJob(c.Request.Context(), job)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}
	respond.Created(c, created)
}

func (h *Handler) listCourses(c *gin.Context) {
	filter := CourseFilter{
		Provider:   c.Query("provider"),
		CareerPath: c.Query("careerPath"),
		Limit:      queryInt(c, "limit"),
	}

	courses, err := h.Svc.ListCourses(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list courses", nil)
		return
	}
	if courses == nil {
		courses = []match.Course{}
	}
	respond.OK(c, gin.H{"courses": courses})
}

func (h *Handler) createCourse(c *gin.Context) {
	var course match.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	created, err := h.Svc.CreateCourse(c.Request.Context(), course)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create course", nil)
		}
		return
	}
	respond.Created(c, created)
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
