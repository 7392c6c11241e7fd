package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-backend/internal/account"
	googleauth "career-backend/internal/auth"
	"career-backend/internal/catalog"
	"career-backend/internal/goals"
	"career-backend/internal/guide"
	"career-backend/internal/profiles"
	"career-backend/internal/resumes"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/metrics"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/usage"
	"career-backend/internal/users"
)

// RouterDeps carries the wired handlers into the router. Construction of
// repos and services happens in bootstrap; the router only mounts routes.
type RouterDeps struct {
	Config config.Config

	GoogleAuth *googleauth.GoogleService
	Users      *users.Handler
	Profiles   *profiles.Handler
	Resumes    *resumes.Handler
	Catalog    *catalog.Handler
	Guide      *guide.Handler
	Goals      *goals.Handler
	Usage      *usage.Handler
	Account    *account.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	deps.Users.RegisterRoutes(api)
	deps.Profiles.RegisterRoutes(api)
	deps.Resumes.RegisterRoutes(api)
	deps.Catalog.RegisterRoutes(api)
	deps.Goals.RegisterRoutes(api)
	deps.Usage.RegisterRoutes(api)
	deps.Account.RegisterRoutes(api)

	// Guide generation does real scoring work per request, so it gets its
	// own token bucket on top of the usage quota.
	guided := api.Group("")
	guided.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"GUIDE": {Rate: 0.5, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return "GUIDE"
			}
			return ""
		},
		DefaultGroup: "READ",
	}))
	deps.Guide.RegisterRoutes(guided)

	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		deps.Usage.RegisterDevRoutes(dev)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
