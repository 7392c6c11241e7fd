package goals

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches goal routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/goals", h.list)
	rg.PATCH("/goals/:id", h.update)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list goals", nil)
		return
	}
	if list == nil {
		list = []Goal{}
	}
	respond.OK(c, gin.H{"goals": list})
}

type updateRequest struct {
	Completed      *bool      `json:"completed"`
	MilestoneIndex *int       `json:"milestoneIndex"`
	MilestoneDone  *bool      `json:"milestoneDone"`
	Title          *string    `json:"title"`
	TargetDate     *time.Time `json:"targetDate"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	goalID := c.Param("id")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Completed == nil && req.MilestoneIndex == nil && req.Title == nil && req.TargetDate == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "nothing to update", nil)
		return
	}

	goal, err := h.Svc.Update(c.Request.Context(), userID, goalID, Patch{
		Completed:      req.Completed,
		MilestoneIndex: req.MilestoneIndex,
		MilestoneDone:  req.MilestoneDone,
		Title:          req.Title,
		TargetDate:     req.TargetDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "goal not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update goal", nil)
		}
		return
	}
	respond.OK(c, goal)
}
