package training

import (
	"context"
)

// Repository defines the persistence contract for training programs
type Repository interface {
	// Create stores a new program in the catalog
	Create(ctx context.Context, p *Program) error

	// FindByID looks up a program by its ID
	FindByID(ctx context.Context, id string) (*Program, error)

	// List lists programs with pagination, best rated first
	List(ctx context.Context, limit, offset int) ([]*Program, error)

	// Count counts the programs in the catalog
	Count(ctx context.Context) (int, error)

	// CreateEnrollment stores a student enrollment and bumps the
	// program's student counter.
	CreateEnrollment(ctx context.Context, e *Enrollment) error

	// IsEnrolled reports whether a user is already enrolled in a program
	IsEnrolled(ctx context.Context, programID, userID string) (bool, error)
}
