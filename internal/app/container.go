package app

import (
	"context"
	"log"
	"time"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/database/migration"
	dbpostgres "jobpilot/internal/database/postgres"
	"jobpilot/internal/database/seeder"
	"jobpilot/internal/infrastructure/cache"
	"jobpilot/internal/pkg/jwt"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"
	"jobpilot/internal/ws"
)

// Container owns the process-wide dependencies and the usecases wired on
// top of them.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	Users        repository.UserRepository
	Profiles     repository.ProfileRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository

	Gateway   *ai.Gateway
	Generator *resume.Generator

	AuthUC        usecase.AuthUsecase
	ProfileUC     usecase.ProfileUsecase
	JobListUC     usecase.JobListUsecase
	ApplicationUC usecase.ApplicationUsecase
	InsightUC     usecase.InsightUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)

	if cfg.Database.RunSeeders {
		runner := seeder.Runner{
			Seeders: []seeder.Seeder{seeder.NewDemoJobs(jobs, redisCache)},
			Logger:  logger,
		}
		if err := runner.Run(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	hub := ws.NewHub(logger)

	gateway := ai.NewGateway(cfg.AI.RequestTimeout)
	generator := resume.NewGenerator(gateway, logger)

	c := &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redisCache,
		JWT:   jwtSvc,
		Hub:   hub,

		Users:        users,
		Profiles:     profiles,
		Jobs:         jobs,
		Applications: applications,

		Gateway:   gateway,
		Generator: generator,
	}

	c.AuthUC = usecase.NewAuthUsecase(users, jwtSvc)
	c.ProfileUC = usecase.NewProfileUsecase(profiles, generator)
	c.JobListUC = usecase.NewJobListUsecase(jobs, profiles, redisCache, logger)
	c.ApplicationUC = usecase.NewApplicationUsecase(applications, jobs, profiles, generator, ws.NewNotifier(hub), logger)
	c.InsightUC = usecase.NewInsightUsecase(jobs, profiles, generator, gateway)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
