package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/application"
	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/nlp"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubJobList struct {
	items []usecase.JobListItem
	job   job.Job
	err   error
}

func (s *stubJobList) ListJobs(context.Context, usecase.JobListParams) ([]usecase.JobListItem, error) {
	return s.items, s.err
}

func (s *stubJobList) GetJob(context.Context, uuid.UUID) (job.Job, error) {
	if s.err != nil {
		return job.Job{}, s.err
	}
	return s.job, nil
}

func (s *stubJobList) AnalyzeDescription(description string) (nlp.Extraction, error) {
	if s.err != nil {
		return nlp.Extraction{}, s.err
	}
	return nlp.Extract(description), nil
}

type stubApplications struct {
	created application.Application
	list    []repository.ApplicationWithJob
	err     error
}

func (s *stubApplications) Submit(context.Context, usecase.SubmitApplicationInput) (application.Application, error) {
	if s.err != nil {
		return application.Application{}, s.err
	}
	return s.created, nil
}

func (s *stubApplications) ListByUser(context.Context, uuid.UUID) ([]repository.ApplicationWithJob, error) {
	return s.list, s.err
}

// testApp wires a handler group behind the error middleware plus a stand-in
// auth middleware that injects a fixed user id.
func testApp(userID uuid.UUID, mount func(r fiber.Router)) *fiber.App {
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.CtxUserIDKey, userID)
		return c.Next()
	})
	mount(app)
	return app
}

func decodeEnvelope(t *testing.T, app *fiber.App, method, path string, body any) envelope {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	if env.Status != resp.StatusCode {
		t.Fatalf("envelope status %d disagrees with HTTP status %d", env.Status, resp.StatusCode)
	}
	return env
}

func TestApplicationHandler_Submit_Duplicate(t *testing.T) {
	h := NewApplicationHandler(&stubApplications{err: repository.ErrDuplicateApplication})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/applications"))
	})

	env := decodeEnvelope(t, app, "POST", "/applications/", map[string]any{"job_id": uuid.New()})
	if env.Status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", env.Status)
	}
	if env.Message != "Already applied to this job" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestApplicationHandler_Submit_Created(t *testing.T) {
	created := application.Application{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		Status:     application.StatusApplied,
		MatchScore: 65,
	}
	h := NewApplicationHandler(&stubApplications{created: created})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/applications"))
	})

	env := decodeEnvelope(t, app, "POST", "/applications/", map[string]any{"job_id": created.JobID})
	if env.Status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", env.Status, env.Message)
	}

	var got struct {
		Status     string `json:"status"`
		MatchScore int    `json:"match_score"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Status != "applied" || got.MatchScore != 65 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestJobsHandler_Get_InvalidID(t *testing.T) {
	h := NewJobsHandler(&stubJobList{})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/jobs"))
	})

	env := decodeEnvelope(t, app, "GET", "/jobs/not-a-uuid", nil)
	if env.Status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", env.Status)
	}
}

func TestJobsHandler_Get_NotFound(t *testing.T) {
	h := NewJobsHandler(&stubJobList{err: repository.ErrJobNotFound})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/jobs"))
	})

	env := decodeEnvelope(t, app, "GET", "/jobs/"+uuid.NewString(), nil)
	if env.Status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", env.Status)
	}
}

func TestJobsHandler_List_ScoredForAuthenticatedUser(t *testing.T) {
	h := NewJobsHandler(&stubJobList{items: []usecase.JobListItem{
		{Job: job.Job{ID: uuid.New(), Title: "Backend Engineer"}, MatchScore: 72, TimeAgo: "2 hours ago"},
	}})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/jobs"))
	})

	env := decodeEnvelope(t, app, "GET", "/jobs/", nil)
	if env.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", env.Status)
	}

	var items []struct {
		Title      string `json:"title"`
		MatchScore *int   `json:"match_score"`
		PostedAgo  string `json:"posted_ago"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(items) != 1 || items[0].MatchScore == nil || *items[0].MatchScore != 72 {
		t.Fatalf("expected scored item, got %+v", items)
	}
	if items[0].PostedAgo != "2 hours ago" {
		t.Fatalf("unexpected posted_ago: %q", items[0].PostedAgo)
	}
}

func TestJobsHandler_Analyze(t *testing.T) {
	h := NewJobsHandler(&stubJobList{})
	app := testApp(uuid.New(), func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/jobs"))
	})

	env := decodeEnvelope(t, app, "POST", "/jobs/analyze", map[string]string{
		"description": "Looking for strong React and TypeScript experience. Bachelor degree required.",
	})
	if env.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", env.Status, env.Message)
	}

	var got struct {
		Skills       []string `json:"skills"`
		Keywords     []string `json:"keywords"`
		Requirements []string `json:"requirements"`
	}
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got.Skills) == 0 || len(got.Keywords) == 0 {
		t.Fatalf("expected non-empty extraction: %+v", got)
	}
}

func TestProviderHandler_List(t *testing.T) {
	h := NewProviderHandler()
	app := testApp(uuid.Nil, func(r fiber.Router) {
		h.RegisterRoutes(r.Group("/ai"))
	})

	env := decodeEnvelope(t, app, "GET", "/ai/providers", nil)
	if env.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", env.Status)
	}

	var got []ai.Descriptor
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(got) != 4 || got[0].Name != "openai" || got[3].Name != "deepseek" {
		t.Fatalf("unexpected provider registry: %+v", got)
	}
}
