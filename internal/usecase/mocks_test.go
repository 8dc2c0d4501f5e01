package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/domain/application"
	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/repository"
)

type mockApplicationRepo struct {
	exists    bool
	existsErr error
	createErr error
	list      []repository.ApplicationWithJob
	listErr   error

	createCalls int
	lastCreated application.Application
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	m.createCalls++
	if m.createErr != nil {
		return application.Application{}, m.createErr
	}
	a.ID = uuid.New()
	a.AppliedAt = time.Now().UTC()
	a.UpdatedAt = a.AppliedAt
	m.lastCreated = a
	return a, nil
}

func (m *mockApplicationRepo) ExistsByUserAndJob(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockApplicationRepo) ListByUser(context.Context, uuid.UUID) ([]repository.ApplicationWithJob, error) {
	return m.list, m.listErr
}

type mockJobRepo struct {
	jobs    map[uuid.UUID]job.Job
	items   []job.Job
	listErr error

	listCalls int
}

func (m *mockJobRepo) List(context.Context, repository.JobFilter) ([]job.Job, error) {
	m.listCalls++
	return m.items, m.listErr
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m *mockJobRepo) Upsert(_ context.Context, j job.Job) (uuid.UUID, error) {
	return uuid.New(), nil
}

type mockProfileRepo struct {
	profile   user.Profile
	getErr    error
	createErr error
	updateErr error

	lastSaved user.Profile
}

func (m *mockProfileRepo) Create(_ context.Context, p user.Profile) (user.Profile, error) {
	if m.createErr != nil {
		return user.Profile{}, m.createErr
	}
	p.ID = uuid.New()
	m.lastSaved = p
	return p, nil
}

func (m *mockProfileRepo) GetByUserID(context.Context, uuid.UUID) (user.Profile, error) {
	if m.getErr != nil {
		return user.Profile{}, m.getErr
	}
	return m.profile, nil
}

func (m *mockProfileRepo) Update(_ context.Context, p user.Profile) (user.Profile, error) {
	if m.updateErr != nil {
		return user.Profile{}, m.updateErr
	}
	m.lastSaved = p
	return p, nil
}

type mockOptimizer struct {
	result resume.OptimizeResult

	calls   int
	lastReq resume.OptimizeRequest
	lastCfg ai.Config
}

func (m *mockOptimizer) OptimizeResume(_ context.Context, req resume.OptimizeRequest, cfg ai.Config) resume.OptimizeResult {
	m.calls++
	m.lastReq = req
	m.lastCfg = cfg
	return m.result
}

type mockNotifier struct {
	calls    int
	lastUser uuid.UUID
	lastApp  application.Application
}

func (m *mockNotifier) ApplicationCreated(userID uuid.UUID, app application.Application) {
	m.calls++
	m.lastUser = userID
	m.lastApp = app
}

type mockInsightGen struct {
	insights []string
	calls    int
}

func (m *mockInsightGen) GenerateInsights(context.Context, resume.InsightProfile, string, ai.Config) []string {
	m.calls++
	return m.insights
}

type mockRegistry struct {
	supported map[string]bool
}

func (m *mockRegistry) Supports(provider string) bool { return m.supported[provider] }

type mockParser struct {
	parsed resume.ParsedResume
	err    error

	calls int
}

func (m *mockParser) ParseResume(context.Context, string, ai.Config) (resume.ParsedResume, error) {
	m.calls++
	if m.err != nil {
		return resume.ParsedResume{}, m.err
	}
	return m.parsed, nil
}

type mockCache struct {
	store map[string][]byte

	gets, sets int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}
