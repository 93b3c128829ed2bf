package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SurajNaik1502/TPC/internal/domain/job"
)

// Job repository errors
var (
	ErrJobNotFound          = errors.New("job posting not found")
	ErrDuplicateApplication = errors.New("user already applied to this job")
)

// JobRepository is the pgx implementation of job.Repository
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) job.Repository {
	return &JobRepository{db: db}
}

// Create stores a new job posting
func (r *JobRepository) Create(ctx context.Context, j *job.Job) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if j.PostedAt.IsZero() {
		j.PostedAt = now
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (id, title, company, location, type, salary, description, skills, posted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, j.ID, j.Title, j.Company, j.Location, j.Type, j.Salary, j.Description, j.Skills, j.PostedAt, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job posting: %w", err)
	}

	return nil
}

// FindByID looks up a posting by its ID
func (r *JobRepository) FindByID(ctx context.Context, id string) (*job.Job, error) {
	var j job.Job
	err := r.db.QueryRow(ctx, `
		SELECT id, title, company, location, type, salary, description, skills, posted_at, created_at
		FROM jobs
		WHERE id = $1
	`, id).Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary, &j.Description, &j.Skills, &j.PostedAt, &j.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("error finding job posting: %w", err)
	}

	return &j, nil
}

// List lists postings newest first, optionally filtered by search text
func (r *JobRepository) List(ctx context.Context, search string, limit, offset int) ([]*job.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, company, location, type, salary, description, skills, posted_at, created_at
		FROM jobs
		WHERE $1 = ''
		   OR title ILIKE '%' || $1 || '%'
		   OR company ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE '%' || $1 || '%')
		ORDER BY posted_at DESC
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing job postings: %w", err)
	}
	defer rows.Close()

	var jobs []*job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary, &j.Description, &j.Skills, &j.PostedAt, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("error reading job posting: %w", err)
		}
		jobs = append(jobs, &j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading job posting rows: %w", err)
	}

	return jobs, nil
}

// Count counts the postings matching the search filter
func (r *JobRepository) Count(ctx context.Context, search string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM jobs
		WHERE $1 = ''
		   OR title ILIKE '%' || $1 || '%'
		   OR company ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE '%' || $1 || '%')
	`, search).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting job postings: %w", err)
	}

	return count, nil
}

// CreateApplication stores a candidate application for a posting
func (r *JobRepository) CreateApplication(ctx context.Context, a *job.Application) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	tag, err := r.db.Exec(ctx, `
		INSERT INTO job_applications (id, job_id, user_id, cover_letter, resume_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job_id, user_id) DO NOTHING
	`, a.ID, a.JobID, a.UserID, a.CoverLetter, a.ResumeURL, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating job application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateApplication
	}

	return nil
}

// HasApplied reports whether a user already applied to a posting
func (r *JobRepository) HasApplied(ctx context.Context, jobID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM job_applications WHERE job_id = $1 AND user_id = $2)
	`, jobID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking job application: %w", err)
	}

	return exists, nil
}
