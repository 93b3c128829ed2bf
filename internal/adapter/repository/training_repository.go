package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SurajNaik1502/TPC/internal/domain/training"
)

// Training repository errors
var (
	ErrProgramNotFound     = errors.New("training program not found")
	ErrDuplicateEnrollment = errors.New("user already enrolled in this program")
)

// TrainingRepository is the pgx implementation of training.Repository
type TrainingRepository struct {
	db *pgxpool.Pool
}

// NewTrainingRepository creates a new TrainingRepository
func NewTrainingRepository(db *pgxpool.Pool) training.Repository {
	return &TrainingRepository{db: db}
}

// Create stores a new program in the catalog
func (r *TrainingRepository) Create(ctx context.Context, p *training.Program) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO training_programs (id, title, description, duration, level, price, rating, students, skills, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.Title, p.Description, p.Duration, p.Level, p.Price, p.Rating, p.Students, p.Skills, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating training program: %w", err)
	}

	return nil
}

// FindByID looks up a program by its ID
func (r *TrainingRepository) FindByID(ctx context.Context, id string) (*training.Program, error) {
	var p training.Program
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, duration, level, price, rating, students, skills, created_at
		FROM training_programs
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Duration, &p.Level, &p.Price, &p.Rating, &p.Students, &p.Skills, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error finding training program: %w", err)
	}

	return &p, nil
}

// List lists programs with pagination, best rated first
func (r *TrainingRepository) List(ctx context.Context, limit, offset int) ([]*training.Program, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, duration, level, price, rating, students, skills, created_at
		FROM training_programs
		ORDER BY rating DESC, students DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing training programs: %w", err)
	}
	defer rows.Close()

	var programs []*training.Program
	for rows.Next() {
		var p training.Program
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Duration, &p.Level, &p.Price, &p.Rating, &p.Students, &p.Skills, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("error reading training program: %w", err)
		}
		programs = append(programs, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading training program rows: %w", err)
	}

	return programs, nil
}

// Count counts the programs in the catalog
func (r *TrainingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM training_programs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting training programs: %w", err)
	}

	return count, nil
}

// CreateEnrollment stores a student enrollment and bumps the program's
// student counter in the same transaction.
func (r *TrainingRepository) CreateEnrollment(ctx context.Context, e *training.Enrollment) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting enrollment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO training_enrollments (id, program_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (program_id, user_id) DO NOTHING
	`, e.ID, e.ProgramID, e.UserID, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateEnrollment
	}

	if _, err := tx.Exec(ctx, `
		UPDATE training_programs SET students = students + 1 WHERE id = $1
	`, e.ProgramID); err != nil {
		return fmt.Errorf("error updating student counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing enrollment: %w", err)
	}

	return nil
}

// IsEnrolled reports whether a user is already enrolled in a program
func (r *TrainingRepository) IsEnrolled(ctx context.Context, programID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM training_enrollments WHERE program_id = $1 AND user_id = $2)
	`, programID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}

	return exists, nil
}
