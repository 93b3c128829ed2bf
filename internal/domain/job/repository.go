package job

import (
	"context"
)

// Repository defines the persistence contract for job postings
type Repository interface {
	// Create stores a new job posting
	Create(ctx context.Context, j *Job) error

	// FindByID looks up a posting by its ID
	FindByID(ctx context.Context, id string) (*Job, error)

	// List lists postings newest first, optionally filtered by a free-text
	// search over title, company and skills.
	List(ctx context.Context, search string, limit, offset int) ([]*Job, error)

	// Count counts the postings matching the search filter
	Count(ctx context.Context, search string) (int, error)

	// CreateApplication stores a candidate application for a posting
	CreateApplication(ctx context.Context, a *Application) error

	// HasApplied reports whether a user already applied to a posting
	HasApplied(ctx context.Context, jobID, userID string) (bool, error)
}
