package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
}

// me prefers the stored user record and falls back to token claims, so
// guests and first-time logins still get an identity payload.
func (h *Handler) me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	if h.Svc != nil {
		if user, err := h.Svc.GetByID(c.Request.Context(), userID); err == nil {
			respond.JSON(c, http.StatusOK, gin.H{
				"userId":     user.ID,
				"email":      user.Email,
				"fullName":   user.FullName,
				"pictureUrl": user.PictureURL,
			})
			return
		}
	}

	response := gin.H{"userId": userID}
	if email := middleware.UserEmailFromContext(c); email != "" {
		response["email"] = email
	}
	if name := middleware.UserNameFromContext(c); name != "" {
		response["fullName"] = name
	}
	if picture := middleware.UserPictureFromContext(c); picture != "" {
		response["pictureUrl"] = picture
	}
	respond.JSON(c, http.StatusOK, response)
}
