package repository

import (
	"context"
	"errors"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type ProfileRepository interface {
	Create(ctx context.Context, p user.Profile) (user.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	Update(ctx context.Context, p user.Profile) (user.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p user.Profile) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_profiles
		   (user_id, job_titles, location, location_type, min_salary, max_salary, experience_years, skills, work_history, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		p.UserID, p.JobTitles, p.Location, p.LocationType, p.MinSalary, p.MaxSalary,
		p.ExperienceYears, p.Skills, p.WorkHistory, p.ResumeURL,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return user.Profile{}, ErrProfileExists
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	var p user.Profile
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_titles, location, location_type, min_salary, max_salary,
		        experience_years, skills, work_history, resume_url, created_at, updated_at
		 FROM user_profiles
		 WHERE user_id = $1`,
		userID,
	)
	err := row.Scan(&p.ID, &p.UserID, &p.JobTitles, &p.Location, &p.LocationType,
		&p.MinSalary, &p.MaxSalary, &p.ExperienceYears, &p.Skills, &p.WorkHistory,
		&p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, p user.Profile) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE user_profiles
		 SET job_titles = $2, location = $3, location_type = $4, min_salary = $5, max_salary = $6,
		     experience_years = $7, skills = $8, work_history = $9, resume_url = $10, updated_at = now()
		 WHERE user_id = $1
		 RETURNING id, updated_at`,
		p.UserID, p.JobTitles, p.Location, p.LocationType, p.MinSalary, p.MaxSalary,
		p.ExperienceYears, p.Skills, p.WorkHistory, p.ResumeURL,
	)
	if err := row.Scan(&p.ID, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}
