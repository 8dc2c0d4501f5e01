package repository

import (
	"context"
	"errors"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/application"

	"github.com/google/uuid"
)

var ErrDuplicateApplication = errors.New("application already exists for this job")

// ApplicationWithJob is a user's application joined with its job listing.
type ApplicationWithJob struct {
	application.Application
	JobTitle    string
	JobCompany  string
	JobLocation string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create persists the application. The (user_id, job_id) unique index is the
// authoritative duplicate guard: a 23505 from a concurrent submission maps
// to ErrDuplicateApplication.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, status, match_score, tailored_resume, cover_letter)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, applied_at, updated_at`,
		a.UserID, a.JobID, a.Status, a.MatchScore, a.TailoredResume, a.CoverLetter,
	)
	if err := row.Scan(&a.ID, &a.AppliedAt, &a.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return application.Application{}, ErrDuplicateApplication
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationWithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.user_id, a.job_id, a.status, a.match_score, a.tailored_resume, a.cover_letter,
		        a.applied_at, a.updated_at, j.title, j.company, j.location
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.user_id = $1
		 ORDER BY a.applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationWithJob, 0)
	for rows.Next() {
		var a ApplicationWithJob
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.MatchScore,
			&a.TailoredResume, &a.CoverLetter, &a.AppliedAt, &a.UpdatedAt,
			&a.JobTitle, &a.JobCompany, &a.JobLocation); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
