package profile

import "time"

// UnknownDisplayName is the label used when a sender has no profile
const UnknownDisplayName = "Unknown User"

// Profile is the public projection of a platform identity used to
// decorate chat messages. Account data itself lives in the auth platform;
// this table only mirrors what the UI needs.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Name returns the display name, falling back to the generic label when
// the profile carries none.
func (p *Profile) Name() string {
	if p == nil || p.DisplayName == "" {
		return UnknownDisplayName
	}
	return p.DisplayName
}
