package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SurajNaik1502/TPC/internal/domain/profile"
)

// ProfileRepository is the pgx implementation of profile.Repository
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) profile.Repository {
	return &ProfileRepository{db: db}
}

// FindByUserID looks up a single profile. A missing row is not an error:
// display degrades to the generic label instead.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	var p profile.Profile
	err := r.db.QueryRow(ctx, `
		SELECT user_id, display_name, avatar_url, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.DisplayName, &p.AvatarURL, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding profile: %w", err)
	}

	return &p, nil
}

// FindByUserIDs batch-resolves profiles for a set of user IDs
func (r *ProfileRepository) FindByUserIDs(ctx context.Context, userIDs []string) (map[string]*profile.Profile, error) {
	profiles := make(map[string]*profile.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, display_name, avatar_url, updated_at
		FROM profiles
		WHERE user_id = ANY($1)
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("error batch-resolving profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.UserID, &p.DisplayName, &p.AvatarURL, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error reading profile: %w", err)
		}
		profiles[p.UserID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading profile rows: %w", err)
	}

	return profiles, nil
}
