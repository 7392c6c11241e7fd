package profiles

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

// ResumeTextSource supplies the extracted text of a user's current resume.
type ResumeTextSource interface {
	CurrentText(ctx context.Context, userID string) (string, error)
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc     *Service
	Resumes ResumeTextSource
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, resumes ResumeTextSource) *Handler {
	return &Handler{Svc: svc, Resumes: resumes}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/me", h.me)
	rg.PUT("/profiles/me", h.save)
	rg.POST("/profiles/import", h.importFromResume)
}

func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no profile yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		}
		return
	}
	respond.OK(c, toResponse(profile))
}

func (h *Handler) save(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Save(c.Request.Context(), userID, req.toModel())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save profile", nil)
		}
		return
	}
	respond.OK(c, toResponse(saved))
}

// importFromResume parses the user's current resume into a draft profile.
// The draft is returned for review, not persisted.
func (h *Handler) importFromResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if h.Resumes == nil {
		respond.Error(c, http.StatusServiceUnavailable, "not_configured", "resume import not configured", nil)
		return
	}

	text, err := h.Resumes.CurrentText(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "no resume to import", nil)
		return
	}

	draft := ParseResumeText(text, time.Now().UTC())
	respond.OK(c, toResponse(draft))
}
