package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"career-backend/internal/goals"
	"career-backend/internal/match"
	"career-backend/internal/profiles"
	"career-backend/internal/resumes"
	localstore "career-backend/internal/shared/storage/object/local"
	"career-backend/internal/usage"
)

type testEnv struct {
	router     *gin.Engine
	svc        *Service
	resumeRepo *resumes.MemoryRepo
	goalRepo   *goals.MemoryRepo
	profileSvc *profiles.Service
	resumeSvc  *resumes.Service
	goalSvc    *goals.Service
	usageSvc   *usage.Service
}

func newTestEnv(t *testing.T, userID string) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resumeRepo := resumes.NewMemoryRepo()
	goalRepo := goals.NewMemoryRepo()
	profileSvc := profiles.NewService(profiles.NewMemoryRepo())
	resumeSvc := resumes.NewService(localstore.New(t.TempDir()), resumeRepo)
	goalSvc := goals.NewService(goalRepo)
	usageSvc := usage.NewService()

	svc := &Service{
		Profiles:   profileSvc,
		Resumes:    resumeSvc,
		Goals:      goalSvc,
		Usage:      usageSvc,
		ResumeRepo: resumeRepo,
		GoalRepo:   goalRepo,
	}
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", false)
		c.Next()
	})
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return testEnv{
		router:     router,
		svc:        svc,
		resumeRepo: resumeRepo,
		goalRepo:   goalRepo,
		profileSvc: profileSvc,
		resumeSvc:  resumeSvc,
		goalSvc:    goalSvc,
		usageSvc:   usageSvc,
	}
}

func seedGuestData(t *testing.T, env testEnv, guestUserID string) {
	t.Helper()
	ctx := context.Background()

	resume := resumes.Resume{
		ID:         "resume-1",
		UserID:     guestUserID,
		FileName:   "resume.txt",
		MimeType:   "text/plain",
		SizeBytes:  42,
		StorageKey: "ignored",
		CreatedAt:  time.Now().UTC(),
	}
	if err := env.resumeRepo.Create(ctx, resume); err != nil {
		t.Fatalf("create resume: %v", err)
	}

	goal := goals.Goal{
		ID:         "goal-learn-go",
		UserID:     guestUserID,
		Title:      "Learn Go",
		Source:     goals.SourceCustom,
		TargetDate: time.Now().UTC().Add(30 * 24 * time.Hour),
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	if err := env.goalRepo.Upsert(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	profile := profiles.Profile{
		Skills:     []match.Skill{{Name: "go"}},
		TargetRole: "Backend Developer",
	}
	if _, err := env.profileSvc.Save(ctx, guestUserID, profile); err != nil {
		t.Fatalf("save guest profile: %v", err)
	}
}

func TestClaimGuestMigratesData(t *testing.T) {
	env := newTestEnv(t, "user-1")

	guestID := "11111111-1111-1111-1111-111111111111"
	guestUserID := "guest:" + guestID
	seedGuestData(t, env, guestUserID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	ctx := context.Background()
	migrated, err := env.resumeRepo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list resumes: %v", err)
	}
	if len(migrated) != 1 {
		t.Fatalf("expected 1 migrated resume, got %d", len(migrated))
	}

	goalsList, err := env.goalRepo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goalsList) != 1 {
		t.Fatalf("expected 1 migrated goal, got %d", len(goalsList))
	}

	profile, err := env.profileSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.TargetRole != "Backend Developer" {
		t.Fatalf("expected migrated profile, got target role %q", profile.TargetRole)
	}
	if _, err := env.profileSvc.Get(ctx, guestUserID); err == nil {
		t.Fatalf("expected guest profile to be gone after claim")
	}
}

func TestClaimGuestKeepsExistingProfile(t *testing.T) {
	env := newTestEnv(t, "user-1")
	ctx := context.Background()

	existing := profiles.Profile{TargetRole: "Data Engineer"}
	if _, err := env.profileSvc.Save(ctx, "user-1", existing); err != nil {
		t.Fatalf("save existing profile: %v", err)
	}

	guestID := "22222222-2222-2222-2222-222222222222"
	seedGuestData(t, env, "guest:"+guestID)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	profile, err := env.profileSvc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.TargetRole != "Data Engineer" {
		t.Fatalf("existing profile should win, got target role %q", profile.TargetRole)
	}
}

func TestClaimGuestIdempotent(t *testing.T) {
	env := newTestEnv(t, "user-1")

	guestID := "33333333-3333-3333-3333-333333333333"
	seedGuestData(t, env, "guest:"+guestID)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
		req.Header.Set("X-Guest-Id", guestID)
		resp := httptest.NewRecorder()
		env.router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("call %d: expected status 200, got %d", i+1, resp.Code)
		}
	}

	migrated, err := env.resumeRepo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list resumes: %v", err)
	}
	if len(migrated) != 1 {
		t.Fatalf("expected 1 resume after repeated claims, got %d", len(migrated))
	}
}

func TestClaimGuestRejectsBadHeader(t *testing.T) {
	env := newTestEnv(t, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without header, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	req.Header.Set("X-Guest-Id", "not-a-uuid")
	resp = httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for bad uuid, got %d", resp.Code)
	}
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	env := newTestEnv(t, "user-1")
	ctx := context.Background()

	seedGuestData(t, env, "user-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/account", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", resp.Code, resp.Body.String())
	}

	if _, err := env.profileSvc.Get(ctx, "user-1"); err == nil {
		t.Fatalf("expected profile gone")
	}
	left, err := env.resumeRepo.ListByUser(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("list resumes: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no resumes, got %d", len(left))
	}
	goalsLeft, err := env.goalRepo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goalsLeft) != 0 {
		t.Fatalf("expected no goals, got %d", len(goalsLeft))
	}
}
