package profile

import (
	"context"
)

// Repository defines lookups for profile projections
type Repository interface {
	// FindByUserID looks up a single profile. Returns nil (no error)
	// when the user has no profile row.
	FindByUserID(ctx context.Context, userID string) (*Profile, error)

	// FindByUserIDs batch-resolves profiles for a set of user IDs.
	// Missing users are simply absent from the result map.
	FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*Profile, error)
}
