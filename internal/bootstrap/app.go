package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"career-backend/internal/account"
	googleauth "career-backend/internal/auth"
	"career-backend/internal/catalog"
	"career-backend/internal/goals"
	"career-backend/internal/guide"
	"career-backend/internal/match"
	"career-backend/internal/profiles"
	"career-backend/internal/resumes"
	"career-backend/internal/roles"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/server"
	"career-backend/internal/shared/storage/db"
	"career-backend/internal/shared/storage/object"
	localstore "career-backend/internal/shared/storage/object/local"
	s3store "career-backend/internal/shared/storage/object/s3"
	"career-backend/internal/usage"
	"career-backend/internal/users"
)

// App holds shared dependencies, exposed so handler tests can reach into
// services and repos directly.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Scorer *match.Scorer
	Roles  *roles.Registry

	ProfileRepo profiles.Repo
	ResumeRepo  resumes.Repo
	CatalogRepo catalog.Repo
	GoalRepo    goals.Repo
	UserRepo    users.Repo

	ProfileService *profiles.Service
	ResumeService  *resumes.Service
	CatalogService *catalog.Service
	GoalService    *goals.Service
	GuideService   *guide.Service
	UsageService   *usage.Service
	UserService    *users.Service
	AccountService *account.Service

	ProfileHandler *profiles.Handler
	ResumeHandler  *resumes.Handler
	CatalogHandler *catalog.Handler
	GoalHandler    *goals.Handler
	GuideHandler   *guide.Handler
	UsageHandler   *usage.Handler
	UserHandler    *users.Handler
	AccountHandler *account.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares the full dependency graph and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:     app.Config,
		GoogleAuth: app.GoogleAuth,
		Users:      app.UserHandler,
		Profiles:   app.ProfileHandler,
		Resumes:    app.ResumeHandler,
		Catalog:    app.CatalogHandler,
		Guide:      app.GuideHandler,
		Goals:      app.GoalHandler,
		Usage:      app.UsageHandler,
		Account:    app.AccountHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func engineConfig(cfg config.Config) match.Config {
	mc := match.DefaultConfig()
	if cfg.RecommendLimit > 0 {
		mc.DefaultLimit = cfg.RecommendLimit
	}
	if cfg.CourseGoalOffsetDays > 0 {
		mc.CourseGoalOffsetDays = cfg.CourseGoalOffsetDays
	}
	if cfg.ProjectGoalOffsetDays > 0 {
		mc.ProjectGoalOffsetDays = cfg.ProjectGoalOffsetDays
	}
	return mc
}

func buildServices(app *App) error {
	var (
		profileRepo profiles.Repo
		resumeRepo  resumes.Repo
		catalogRepo catalog.Repo
		goalRepo    goals.Repo
		userRepo    users.Repo
		usageSvc    *usage.Service
	)

	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		catalogRepo = &catalog.PGRepo{DB: app.DB}
		goalRepo = &goals.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		usageSvc = usage.NewPostgresService(usage.NewPGStore(app.DB))
	} else {
		profileRepo = profiles.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		catalogRepo = catalog.NewMemoryRepo()
		goalRepo = goals.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		usageSvc = usage.NewService()
	}

	registry := roles.NewRegistry()
	if path := strings.TrimSpace(app.Config.RoleTemplatesFile); path != "" {
		if err := registry.LoadFile(path); err != nil {
			return fmt.Errorf("load role templates: %w", err)
		}
	}
	scorer := match.NewScorer(engineConfig(app.Config))

	profileSvc := profiles.NewService(profileRepo)
	resumeSvc := resumes.NewService(app.Store, resumeRepo)
	catalogSvc := catalog.NewService(catalogRepo)
	goalSvc := goals.NewService(goalRepo)
	guideSvc := &guide.Service{
		Scorer:   scorer,
		Profiles: profileSvc,
		Catalog:  catalogSvc,
		Roles:    registry,
		Goals:    goalSvc,
		Usage:    usageSvc,
	}
	userSvc := users.NewService(userRepo)
	accountSvc := &account.Service{
		DB:         app.DB,
		Profiles:   profileSvc,
		Resumes:    resumeSvc,
		Goals:      goalSvc,
		Usage:      usageSvc,
		ResumeRepo: resumeRepo,
		GoalRepo:   goalRepo,
	}

	app.Scorer = scorer
	app.Roles = registry
	app.ProfileRepo = profileRepo
	app.ResumeRepo = resumeRepo
	app.CatalogRepo = catalogRepo
	app.GoalRepo = goalRepo
	app.UserRepo = userRepo
	app.ProfileService = profileSvc
	app.ResumeService = resumeSvc
	app.CatalogService = catalogSvc
	app.GoalService = goalSvc
	app.GuideService = guideSvc
	app.UsageService = usageSvc
	app.UserService = userSvc
	app.AccountService = accountSvc

	app.ProfileHandler = profiles.NewHandler(profileSvc, resumeSvc)
	app.ResumeHandler = resumes.NewHandler(resumeSvc)
	app.CatalogHandler = catalog.NewHandler(catalogSvc)
	app.GoalHandler = goals.NewHandler(goalSvc)
	app.GuideHandler = guide.NewHandler(guideSvc)
	app.UsageHandler = usage.NewHandler(usageSvc)
	app.UserHandler = users.NewHandler(userSvc)
	app.AccountHandler = account.NewHandler(accountSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	return nil
}
