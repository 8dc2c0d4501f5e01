package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/database/migration"
	dbpostgres "jobpilot/internal/database/postgres"
	"jobpilot/internal/database/seeder"
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/delivery/http/routes"
	"jobpilot/internal/pkg/jwt"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type jobItem struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	MatchScore *int      `json:"match_score"`
	PostedAgo  string    `json:"posted_ago"`
}

type applicationItem struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	Status      string    `json:"status"`
	MatchScore  int       `json:"match_score"`
	CoverLetter *string   `json:"cover_letter"`
	JobTitle    string    `json:"job_title"`
}

// End-to-end flow against a real database: register, build a profile,
// browse seeded jobs with per-user scores, apply once, get rejected on the
// second attempt, and see the application in the history.
func TestIntegration_RegisterProfileApplyFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	jobs := repository.NewPostgresJobRepository(db)
	if err := seeder.NewDemoJobs(jobs, nil).Run(ctx); err != nil {
		t.Fatalf("seed demo jobs: %v", err)
	}

	app := newTestApp(db)

	email := fmt.Sprintf("it-%s@example.com", uuid.NewString()[:8])
	var userID uuid.UUID
	defer func() { cleanupUser(ctx, db, userID) }()

	token, userID := registerAndLogin(t, app, email)

	createProfile(t, app, token)

	listed := listJobs(t, app, token)
	if len(listed) == 0 {
		t.Fatalf("expected seeded jobs in listing")
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].MatchScore == nil || listed[i-1].MatchScore == nil {
			t.Fatalf("expected scored listing for a user with a profile")
		}
		if *listed[i].MatchScore > *listed[i-1].MatchScore {
			t.Fatalf("expected scores descending at idx=%d", i)
		}
	}

	target := listed[0]

	created := submitApplication(t, app, token, target.ID, fiber.StatusCreated)
	if created.Status != "applied" {
		t.Fatalf("expected status applied, got %q", created.Status)
	}
	if created.MatchScore < 0 || created.MatchScore > 100 {
		t.Fatalf("match score out of range: %d", created.MatchScore)
	}
	if created.CoverLetter == nil || !bytes.Contains([]byte(*created.CoverLetter), []byte(target.Title)) {
		t.Fatalf("cover letter missing job title: %v", created.CoverLetter)
	}

	submitApplication(t, app, token, target.ID, fiber.StatusConflict)

	history := listApplications(t, app, token)
	if len(history) != 1 {
		t.Fatalf("expected one application, got %d", len(history))
	}
	if history[0].JobID != target.ID || history[0].JobTitle != target.Title {
		t.Fatalf("history does not match submitted job: %+v", history[0])
	}
	if history[0].MatchScore != created.MatchScore {
		t.Fatalf("frozen score changed: %d vs %d", history[0].MatchScore, created.MatchScore)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := envOrDefault("JOBPILOT_TEST_DB_HOST", os.Getenv("DB_HOST"))
	port := envOrDefault("JOBPILOT_TEST_DB_PORT", os.Getenv("DB_PORT"))
	name := envOrDefault("JOBPILOT_TEST_DB_NAME", os.Getenv("DB_NAME"))
	user := envOrDefault("JOBPILOT_TEST_DB_USER", os.Getenv("DB_USER"))
	pass := envOrDefault("JOBPILOT_TEST_DB_PASSWORD", os.Getenv("DB_PASSWORD"))
	ssl := envOrDefault("JOBPILOT_TEST_DB_SSL_MODE", os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBPILOT_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		Host:     host,
		Port:     port,
		Name:     name,
		User:     user,
		Password: pass,
		SSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}
	dir := filepath.Join(filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..")), "migrations")
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found: %s", dir)
	}

	if err := (migration.Runner{Dir: dir}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func newTestApp(db database.DB) *fiber.App {
	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)

	jwtSvc := jwt.NewHMACService(
		envOrDefault("JOBPILOT_TEST_JWT_SECRET", "test-secret"),
		15*time.Minute,
		24*time.Hour,
	)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles, nil)
	jobListUC := usecase.NewJobListUsecase(jobs, profiles, nil, nil)
	applicationUC := usecase.NewApplicationUsecase(applications, jobs, profiles, nil, nil, nil)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	routes.NewRegistry(routes.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Profile:      handler.NewProfileHandler(profileUC),
		Jobs:         handler.NewJobsHandler(jobListUC),
		Applications: handler.NewApplicationHandler(applicationUC),
		AuthMW:       middleware.NewAuthMiddleware(jwtSvc),
	}).Register(app)

	return app
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) (string, uuid.UUID) {
	t.Helper()

	body := map[string]string{"email": email, "password": "password-123", "first_name": "Iris"}
	sr := doJSON(t, app, "POST", "/api/v1/auth/register", "", body)
	if sr.Status != fiber.StatusOK {
		t.Fatalf("register: expected 200, got %d (%s)", sr.Status, sr.Message)
	}

	var data struct {
		User struct {
			ID uuid.UUID `json:"id"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("register: decode data: %v", err)
	}
	if data.AccessToken == "" || data.User.ID == uuid.Nil {
		t.Fatalf("register: incomplete data: %s", string(sr.Data))
	}

	sr = doJSON(t, app, "POST", "/api/v1/auth/login", "", map[string]string{"email": email, "password": "password-123"})
	if sr.Status != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", sr.Status, sr.Message)
	}
	var login authData
	if err := json.Unmarshal(sr.Data, &login); err != nil || login.AccessToken == "" {
		t.Fatalf("login: missing access_token (%v)", err)
	}

	return login.AccessToken, data.User.ID
}

func createProfile(t *testing.T, app *fiber.App, token string) {
	t.Helper()

	body := map[string]any{
		"job_titles":       []string{"Backend Engineer"},
		"location":         "Remote",
		"location_type":    "remote",
		"experience_years": "4-6",
		"skills":           "Go, PostgreSQL, Docker, AWS",
		"work_history":     "Six years building backend services.",
	}
	sr := doJSON(t, app, "POST", "/api/v1/profile/", token, body)
	if sr.Status != fiber.StatusCreated {
		t.Fatalf("create profile: expected 201, got %d (%s)", sr.Status, sr.Message)
	}
}

func listJobs(t *testing.T, app *fiber.App, token string) []jobItem {
	t.Helper()

	sr := doJSON(t, app, "GET", "/api/v1/jobs/", token, nil)
	if sr.Status != fiber.StatusOK {
		t.Fatalf("list jobs: expected 200, got %d (%s)", sr.Status, sr.Message)
	}
	var items []jobItem
	if err := json.Unmarshal(sr.Data, &items); err != nil {
		t.Fatalf("list jobs: decode: %v", err)
	}
	return items
}

func submitApplication(t *testing.T, app *fiber.App, token string, jobID uuid.UUID, wantStatus int) applicationItem {
	t.Helper()

	sr := doJSON(t, app, "POST", "/api/v1/applications/", token, map[string]any{"job_id": jobID})
	if sr.Status != wantStatus {
		t.Fatalf("submit application: expected %d, got %d (%s)", wantStatus, sr.Status, sr.Message)
	}
	if wantStatus != fiber.StatusCreated {
		return applicationItem{}
	}

	var created applicationItem
	if err := json.Unmarshal(sr.Data, &created); err != nil {
		t.Fatalf("submit application: decode: %v", err)
	}
	return created
}

func listApplications(t *testing.T, app *fiber.App, token string) []applicationItem {
	t.Helper()

	sr := doJSON(t, app, "GET", "/api/v1/applications/", token, nil)
	if sr.Status != fiber.StatusOK {
		t.Fatalf("list applications: expected 200, got %d (%s)", sr.Status, sr.Message)
	}
	var items []applicationItem
	if err := json.Unmarshal(sr.Data, &items); err != nil {
		t.Fatalf("list applications: decode: %v", err)
	}
	return items
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var buf *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	} else {
		buf = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return sr
}

func cleanupUser(ctx context.Context, db database.DB, userID uuid.UUID) {
	if userID == uuid.Nil {
		return
	}
	_, _ = db.Exec(ctx, `DELETE FROM applications WHERE user_id = $1`, userID)
	_, _ = db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID)
	_, _ = db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
