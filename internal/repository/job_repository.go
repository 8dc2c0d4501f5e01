package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows job listings. Zero values mean "no constraint".
type JobFilter struct {
	Location  string
	Remote    *bool
	MinSalary *int
	MaxSalary *int
	Skills    []string
	Limit     int
	Offset    int
}

type JobRepository interface {
	List(ctx context.Context, filter JobFilter) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Upsert(ctx context.Context, j job.Job) (uuid.UUID, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company, location, location_type, min_salary, max_salary,
	description, requirements, skills, keywords, is_remote, posted_at, external_url`

func (r *PostgresJobRepository) List(ctx context.Context, filter JobFilter) ([]job.Job, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	where := make([]string, 0, 5)
	args := make([]any, 0, 7)

	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.Remote != nil {
		args = append(args, *filter.Remote)
		where = append(where, fmt.Sprintf("is_remote = $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		where = append(where, fmt.Sprintf("(max_salary IS NULL OR max_salary >= $%d)", len(args)))
	}
	if filter.MaxSalary != nil {
		args = append(args, *filter.MaxSalary)
		where = append(where, fmt.Sprintf("(min_salary IS NULL OR min_salary <= $%d)", len(args)))
	}
	if len(filter.Skills) > 0 {
		lowered := make([]string, 0, len(filter.Skills))
		for _, s := range filter.Skills {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				lowered = append(lowered, s)
			}
		}
		if len(lowered) > 0 {
			args = append(args, lowered)
			where = append(where, fmt.Sprintf("skills && $%d", len(args)))
		}
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY posted_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// Upsert inserts a job or refreshes an existing one keyed by title+company.
// Used by the demo seeder to stay idempotent across restarts.
func (r *PostgresJobRepository) Upsert(ctx context.Context, j job.Job) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs
		   (title, company, location, location_type, min_salary, max_salary,
		    description, requirements, skills, keywords, is_remote, external_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (title, company) DO UPDATE SET
		   location = EXCLUDED.location,
		   location_type = EXCLUDED.location_type,
		   min_salary = EXCLUDED.min_salary,
		   max_salary = EXCLUDED.max_salary,
		   description = EXCLUDED.description,
		   requirements = EXCLUDED.requirements,
		   skills = EXCLUDED.skills,
		   keywords = EXCLUDED.keywords,
		   is_remote = EXCLUDED.is_remote,
		   external_url = EXCLUDED.external_url
		 RETURNING id`,
		j.Title, j.Company, j.Location, j.LocationType, j.MinSalary, j.MaxSalary,
		j.Description, j.Requirements, j.Skills, j.Keywords, j.IsRemote, j.ExternalURL,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.LocationType,
		&j.MinSalary, &j.MaxSalary, &j.Description, &j.Requirements,
		&j.Skills, &j.Keywords, &j.IsRemote, &j.PostedAt, &j.ExternalURL)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}
